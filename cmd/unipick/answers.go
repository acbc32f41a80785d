package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"unipick/internal/survey/models"
	surveyservice "unipick/internal/survey/service"
)

// Answers is the YAML answers file:
//
//	country: Australia
//	answers:
//	  academic_band: 优秀(GPA 3.5-3.8/均分85-90)
//	  budget_usd: 30000
//	toggles:
//	  interests: [商科/金融, 计算机/IT]
//
// answers is applied as one form update; toggles are applied afterwards, in
// field name order, one option at a time.
type Answers struct {
	Country string              `yaml:"country"`
	Answers map[string]any      `yaml:"answers"`
	Toggles map[string][]string `yaml:"toggles"`
}

func LoadAnswers(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return ParseAnswers(data)
}

func ParseAnswers(data []byte) (*Answers, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var a Answers
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return &a, nil
}

// Submit runs the answers through a wizard session and submits it.
func (a *Answers) Submit(ctx context.Context, svc *surveyservice.Service, userID string) (*models.Session, error) {
	session, err := svc.Start(ctx, userID, a.Country)
	if err != nil {
		return nil, err
	}
	if len(a.Answers) > 0 {
		patch, err := json.Marshal(a.Answers)
		if err != nil {
			return nil, fmt.Errorf("encode answers: %w", err)
		}
		if _, err := svc.Apply(ctx, userID, session.ID, patch); err != nil {
			return nil, err
		}
	}
	fields := make([]string, 0, len(a.Toggles))
	for field := range a.Toggles {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		for _, option := range a.Toggles[field] {
			if _, err := svc.Toggle(ctx, userID, session.ID, field, option); err != nil {
				return nil, err
			}
		}
	}
	return svc.Submit(ctx, userID, session.ID)
}
