package models

import (
	"fmt"

	"unipick/pkg/validation"
)

// USAForm is the legacy three-step wizard.
type USAForm struct {
	// step 1
	Grade    Grade   `json:"grade" validate:"required,option"`
	GPABand  GPABand `json:"gpa_band" validate:"required,option"`
	SATScore int     `json:"sat_score" validate:"omitempty,min=1350,max=1600"`
	// step 2
	Activities       []Activity `json:"activities" validate:"required,min=2,dive,option"`
	Interests        []Interest `json:"interests" validate:"required,min=3,dive,option"`
	SchoolType       SchoolType `json:"school_type" validate:"required,option"`
	PreferReputation bool       `json:"prefer_reputation"`
	// step 3
	BudgetBand          BudgetBand        `json:"budget_band" validate:"required,option"`
	FamilyExpectation   FamilyExpectation `json:"family_expectation" validate:"required,option"`
	InternshipImportant bool              `json:"internship_important"`
}

// USAPatch is a partial update; nil fields are left untouched. A zero SAT
// score clears it.
type USAPatch struct {
	Grade               *Grade             `json:"grade"`
	GPABand             *GPABand           `json:"gpa_band"`
	SATScore            *int               `json:"sat_score"`
	Activities          *[]Activity        `json:"activities"`
	Interests           *[]Interest        `json:"interests"`
	SchoolType          *SchoolType        `json:"school_type"`
	PreferReputation    *bool              `json:"prefer_reputation"`
	BudgetBand          *BudgetBand        `json:"budget_band"`
	FamilyExpectation   *FamilyExpectation `json:"family_expectation"`
	InternshipImportant *bool              `json:"internship_important"`
}

// USAInput is the legacy request input; field names differ from the form.
type USAInput struct {
	TargetCountry        Country           `json:"target_country"`
	Grade                Grade             `json:"grade"`
	GPA                  GPABand           `json:"gpa"`
	SAT                  *int              `json:"sat"`
	Activities           []Activity        `json:"activities"`
	Interests            []Interest        `json:"interests"`
	SchoolTypePreference SchoolType        `json:"school_type_preference"`
	PreferReputation     bool              `json:"prefer_reputation"`
	Budget               BudgetBand        `json:"budget"`
	FamilyExpectation    FamilyExpectation `json:"family_expectation"`
	InternshipImportant  bool              `json:"internship_important"`
}

// usaSteps lists the Go field names shown on each step.
var usaSteps = [][]string{
	{"Grade", "GPABand", "SATScore"},
	{"Activities", "Interests", "SchoolType", "PreferReputation"},
	{"BudgetBand", "FamilyExpectation", "InternshipImportant"},
}

func NewUSAForm() *USAForm {
	return &USAForm{}
}

func (f *USAForm) Country() Country { return CountryUSA }

func (f *USAForm) Apply(p USAPatch) {
	set(&f.Grade, p.Grade)
	set(&f.GPABand, p.GPABand)
	set(&f.SATScore, p.SATScore)
	setSlice(&f.Activities, p.Activities)
	setSlice(&f.Interests, p.Interests)
	set(&f.SchoolType, p.SchoolType)
	set(&f.PreferReputation, p.PreferReputation)
	set(&f.BudgetBand, p.BudgetBand)
	set(&f.FamilyExpectation, p.FamilyExpectation)
	set(&f.InternshipImportant, p.InternshipImportant)
}

func (f *USAForm) ApplyJSON(data []byte) error {
	var p USAPatch
	if err := decodePatch(data, &p); err != nil {
		return err
	}
	f.Apply(p)
	return nil
}

func (f *USAForm) Toggle(field, option string) (err error) {
	switch field {
	case "activities":
		f.Activities, err = toggleOption(f.Activities, field, option)
	case "interests":
		f.Interests, err = toggleOption(f.Interests, field, option)
	default:
		return unknownField(f.Country(), field)
	}
	return err
}

func (f *USAForm) Validate() FieldErrors {
	return validation.Fields(f)
}

func (f *USAForm) Steps() int { return len(usaSteps) }

func (f *USAForm) ValidateStep(step int) FieldErrors {
	if step < 1 || step > len(usaSteps) {
		return FieldErrors{"step": fmt.Sprintf("step must be between 1 and %d", len(usaSteps))}
	}
	return validation.PartialFields(f, usaSteps[step-1]...)
}

func (f *USAForm) Input() any {
	var sat *int
	if f.SATScore != 0 {
		score := f.SATScore
		sat = &score
	}
	return USAInput{
		TargetCountry:        CountryUSA,
		Grade:                f.Grade,
		GPA:                  f.GPABand,
		SAT:                  sat,
		Activities:           orEmpty(f.Activities),
		Interests:            orEmpty(f.Interests),
		SchoolTypePreference: f.SchoolType,
		PreferReputation:     f.PreferReputation,
		Budget:               f.BudgetBand,
		FamilyExpectation:    f.FamilyExpectation,
		InternshipImportant:  f.InternshipImportant,
	}
}

func (f *USAForm) Schema() []FieldSpec {
	return []FieldSpec{
		singleSpec("grade", "当前年级", Grades, 1),
		singleSpec("gpa_band", "GPA", GPABands, 1),
		{Key: "sat_score", Label: "SAT成绩(选填)", Kind: KindNumber, Min: 1350, Max: 1600, Step: 1},
		multiSpec("activities", "课外活动", Activities, 2, 2),
		multiSpec("interests", "感兴趣的专业方向", Interests, 3, 2),
		singleSpec("school_type", "学校类型", SchoolTypes, 2),
		{Key: "prefer_reputation", Label: "更看重学校名气", Kind: KindBool, Step: 2},
		singleSpec("budget_band", "四年总预算(人民币)", BudgetBands, 3),
		singleSpec("family_expectation", "家庭期望", FamilyExpectations, 3),
		{Key: "internship_important", Label: "实习机会很重要", Kind: KindBool, Step: 3},
	}
}
