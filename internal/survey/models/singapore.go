package models

import "unipick/pkg/validation"

// SingaporeForm holds the Singapore survey answers. MustHaveTG and
// RefuseBond are independent flags, not a derived pair.
type SingaporeForm struct {
	AcademicBand          AcademicBand        `json:"academic_band" validate:"required,option"`
	Interests             []Interest          `json:"interests" validate:"required,min=1,dive,option"`
	ReputationVsValue     ReputationWeight    `json:"reputation_vs_value" validate:"required,option"`
	BudgetUSD             int                 `json:"budget_usd" validate:"required,gt=0"`
	HardBudgetMustWithin  bool                `json:"hard_budget_must_within"`
	BondAcceptance        BondAcceptance      `json:"bond_acceptance" validate:"required,option"`
	MustHaveTG            bool                `json:"must_have_tg"`
	RefuseBond            bool                `json:"refuse_bond"`
	Orientation           Orientation         `json:"orientation" validate:"required,option"`
	InterviewAcceptance   InterviewAcceptance `json:"interview_acceptance" validate:"required,option"`
	RefuseInterview       bool                `json:"refuse_interview"`
	WantDoubleDegree      bool                `json:"want_double_degree"`
	WantExchange          bool                `json:"want_exchange"`
	SafetyImportance      Importance          `json:"safety_importance" validate:"required,option"`
	ScholarshipImportance Importance          `json:"scholarship_importance" validate:"required,option"`
	BudgetTolerance       BudgetTolerance     `json:"budget_tolerance" validate:"required,option"`
	MainConcern           MainConcern         `json:"main_concern" validate:"required,option"`
}

// SingaporePatch is a partial update; nil fields are left untouched.
type SingaporePatch struct {
	AcademicBand          *AcademicBand        `json:"academic_band"`
	Interests             *[]Interest          `json:"interests"`
	ReputationVsValue     *ReputationWeight    `json:"reputation_vs_value"`
	BudgetUSD             *int                 `json:"budget_usd"`
	HardBudgetMustWithin  *bool                `json:"hard_budget_must_within"`
	BondAcceptance        *BondAcceptance      `json:"bond_acceptance"`
	MustHaveTG            *bool                `json:"must_have_tg"`
	RefuseBond            *bool                `json:"refuse_bond"`
	Orientation           *Orientation         `json:"orientation"`
	InterviewAcceptance   *InterviewAcceptance `json:"interview_acceptance"`
	RefuseInterview       *bool                `json:"refuse_interview"`
	WantDoubleDegree      *bool                `json:"want_double_degree"`
	WantExchange          *bool                `json:"want_exchange"`
	SafetyImportance      *Importance          `json:"safety_importance"`
	ScholarshipImportance *Importance          `json:"scholarship_importance"`
	BudgetTolerance       *BudgetTolerance     `json:"budget_tolerance"`
	MainConcern           *MainConcern         `json:"main_concern"`
}

// SingaporeInput is the form itself tagged with the target country.
type SingaporeInput struct {
	TargetCountry Country `json:"target_country"`
	SingaporeForm
}

func NewSingaporeForm() *SingaporeForm {
	return &SingaporeForm{}
}

func (f *SingaporeForm) Country() Country { return CountrySingapore }

func (f *SingaporeForm) Apply(p SingaporePatch) {
	set(&f.AcademicBand, p.AcademicBand)
	setSlice(&f.Interests, p.Interests)
	set(&f.ReputationVsValue, p.ReputationVsValue)
	set(&f.BudgetUSD, p.BudgetUSD)
	set(&f.HardBudgetMustWithin, p.HardBudgetMustWithin)
	set(&f.BondAcceptance, p.BondAcceptance)
	set(&f.MustHaveTG, p.MustHaveTG)
	set(&f.RefuseBond, p.RefuseBond)
	set(&f.Orientation, p.Orientation)
	set(&f.InterviewAcceptance, p.InterviewAcceptance)
	set(&f.RefuseInterview, p.RefuseInterview)
	set(&f.WantDoubleDegree, p.WantDoubleDegree)
	set(&f.WantExchange, p.WantExchange)
	set(&f.SafetyImportance, p.SafetyImportance)
	set(&f.ScholarshipImportance, p.ScholarshipImportance)
	set(&f.BudgetTolerance, p.BudgetTolerance)
	set(&f.MainConcern, p.MainConcern)
}

func (f *SingaporeForm) ApplyJSON(data []byte) error {
	var p SingaporePatch
	if err := decodePatch(data, &p); err != nil {
		return err
	}
	f.Apply(p)
	return nil
}

func (f *SingaporeForm) Toggle(field, option string) (err error) {
	if field != "interests" {
		return unknownField(f.Country(), field)
	}
	f.Interests, err = toggleOption(f.Interests, field, option)
	return err
}

func (f *SingaporeForm) Validate() FieldErrors {
	return validation.Fields(f)
}

func (f *SingaporeForm) Steps() int { return 1 }

func (f *SingaporeForm) ValidateStep(int) FieldErrors {
	return f.Validate()
}

func (f *SingaporeForm) Input() any {
	in := SingaporeInput{TargetCountry: CountrySingapore, SingaporeForm: *f}
	in.Interests = orEmpty(f.Interests)
	return in
}

func (f *SingaporeForm) Schema() []FieldSpec {
	return []FieldSpec{
		singleSpec("academic_band", "学术水平", AcademicBands, 1),
		multiSpec("interests", "感兴趣的专业方向", Interests, 1, 1),
		singleSpec("reputation_vs_value", "排名与性价比", ReputationWeights, 1),
		{Key: "budget_usd", Label: "年度预算(美元)", Kind: KindNumber, Required: true, Min: 1, Step: 1},
		{Key: "hard_budget_must_within", Label: "预算是硬性上限", Kind: KindBool, Step: 1},
		singleSpec("bond_acceptance", "是否接受服务期(TG)", BondAcceptances, 1),
		{Key: "must_have_tg", Label: "必须有学费资助(TG)", Kind: KindBool, Step: 1},
		{Key: "refuse_bond", Label: "拒绝服务期", Kind: KindBool, Step: 1},
		singleSpec("orientation", "培养导向", Orientations, 1),
		singleSpec("interview_acceptance", "面试与作品集", InterviewAcceptances, 1),
		{Key: "refuse_interview", Label: "排除需要面试的专业", Kind: KindBool, Step: 1},
		{Key: "want_double_degree", Label: "希望读双学位", Kind: KindBool, Step: 1},
		{Key: "want_exchange", Label: "希望有交换机会", Kind: KindBool, Step: 1},
		singleSpec("safety_importance", "安全的重要性", Importances, 1),
		singleSpec("scholarship_importance", "奖学金的重要性", Importances, 1),
		singleSpec("budget_tolerance", "预算弹性", BudgetTolerances, 1),
		singleSpec("main_concern", "最关心的问题", MainConcerns, 1),
	}
}
