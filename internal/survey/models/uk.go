package models

import "unipick/pkg/validation"

// UKForm holds the United Kingdom survey answers.
type UKForm struct {
	AcademicBand               AcademicBand           `json:"academic_band" validate:"required,option"`
	Interests                  []Interest             `json:"interests" validate:"required,min=1,dive,option"`
	ReputationVsValue          ReputationWeight       `json:"reputation_vs_value" validate:"required,option"`
	BudgetUSD                  int                    `json:"budget_usd" validate:"required,gt=0"`
	HardBudgetMustWithin       bool                   `json:"hard_budget_must_within"`
	FoundationNeed             FoundationNeed         `json:"foundation_need" validate:"required,option"`
	UCASRoute                  UCASRoute              `json:"ucas_route" validate:"required,option"`
	OxbridgeMustCover          bool                   `json:"oxbridge_must_cover"`
	PlacementYear              PlacementPreference    `json:"placement_year_preference" validate:"required,option"`
	PrepLevel                  PrepLevel              `json:"prep_level" validate:"required,option"`
	RussellGroupPreference     RussellGroupPreference `json:"russell_group_preference" validate:"required,option"`
	RegionPreference           UKRegion               `json:"region_preference" validate:"required,option"`
	InternationalEnvImportance Importance             `json:"international_env_importance" validate:"required,option"`
	Intake                     UKIntake               `json:"intake_preference" validate:"required,option"`
	Foundation                 Choice                 `json:"accept_foundation" validate:"required,option"`
	BudgetTolerance            BudgetTolerance        `json:"budget_tolerance" validate:"required,option"`
	MainConcern                MainConcern            `json:"main_concern" validate:"required,option"`
}

// UKPatch is a partial update; nil fields are left untouched.
type UKPatch struct {
	AcademicBand               *AcademicBand           `json:"academic_band"`
	Interests                  *[]Interest             `json:"interests"`
	ReputationVsValue          *ReputationWeight       `json:"reputation_vs_value"`
	BudgetUSD                  *int                    `json:"budget_usd"`
	HardBudgetMustWithin       *bool                   `json:"hard_budget_must_within"`
	FoundationNeed             *FoundationNeed         `json:"foundation_need"`
	UCASRoute                  *UCASRoute              `json:"ucas_route"`
	OxbridgeMustCover          *bool                   `json:"oxbridge_must_cover"`
	PlacementYear              *PlacementPreference    `json:"placement_year_preference"`
	PrepLevel                  *PrepLevel              `json:"prep_level"`
	RussellGroupPreference     *RussellGroupPreference `json:"russell_group_preference"`
	RegionPreference           *UKRegion               `json:"region_preference"`
	InternationalEnvImportance *Importance             `json:"international_env_importance"`
	Intake                     *UKIntake               `json:"intake_preference"`
	Foundation                 *Choice                 `json:"accept_foundation"`
	BudgetTolerance            *BudgetTolerance        `json:"budget_tolerance"`
	MainConcern                *MainConcern            `json:"main_concern"`
}

type UKInput struct {
	TargetCountry              Country                `json:"target_country"`
	AcademicBand               AcademicBand           `json:"academic_band"`
	Interests                  []Interest             `json:"interests"`
	ReputationVsValue          ReputationWeight       `json:"reputation_vs_value"`
	BudgetUSD                  int                    `json:"budget_usd"`
	HardBudgetMustWithin       bool                   `json:"hard_budget_must_within"`
	FoundationNeed             FoundationNeed         `json:"foundation_need"`
	UCASRoute                  UCASRoute              `json:"ucas_route"`
	OxbridgeMustCover          bool                   `json:"oxbridge_must_cover"`
	PlacementYear              PlacementPreference    `json:"placement_year_preference"`
	PrepLevel                  PrepLevel              `json:"prep_level"`
	RussellGroupPreference     RussellGroupPreference `json:"russell_group_preference"`
	RegionPreference           UKRegion               `json:"region_preference"`
	InternationalEnvImportance Importance             `json:"international_env_importance"`
	Intake                     UKIntake               `json:"intake_preference"`
	AcceptFoundation           bool                   `json:"accept_foundation"`
	BudgetTolerance            BudgetTolerance        `json:"budget_tolerance"`
	MainConcern                MainConcern            `json:"main_concern"`
}

func NewUKForm() *UKForm {
	return &UKForm{}
}

func (f *UKForm) Country() Country { return CountryUK }

func (f *UKForm) Apply(p UKPatch) {
	set(&f.AcademicBand, p.AcademicBand)
	setSlice(&f.Interests, p.Interests)
	set(&f.ReputationVsValue, p.ReputationVsValue)
	set(&f.BudgetUSD, p.BudgetUSD)
	set(&f.HardBudgetMustWithin, p.HardBudgetMustWithin)
	set(&f.FoundationNeed, p.FoundationNeed)
	set(&f.UCASRoute, p.UCASRoute)
	set(&f.OxbridgeMustCover, p.OxbridgeMustCover)
	set(&f.PlacementYear, p.PlacementYear)
	set(&f.PrepLevel, p.PrepLevel)
	set(&f.RussellGroupPreference, p.RussellGroupPreference)
	set(&f.RegionPreference, p.RegionPreference)
	set(&f.InternationalEnvImportance, p.InternationalEnvImportance)
	set(&f.Intake, p.Intake)
	set(&f.Foundation, p.Foundation)
	set(&f.BudgetTolerance, p.BudgetTolerance)
	set(&f.MainConcern, p.MainConcern)
}

func (f *UKForm) ApplyJSON(data []byte) error {
	var p UKPatch
	if err := decodePatch(data, &p); err != nil {
		return err
	}
	f.Apply(p)
	return nil
}

func (f *UKForm) Toggle(field, option string) (err error) {
	if field != "interests" {
		return unknownField(f.Country(), field)
	}
	f.Interests, err = toggleOption(f.Interests, field, option)
	return err
}

func (f *UKForm) Validate() FieldErrors {
	return validation.Fields(f)
}

func (f *UKForm) Steps() int { return 1 }

func (f *UKForm) ValidateStep(int) FieldErrors {
	return f.Validate()
}

func (f *UKForm) Input() any {
	return UKInput{
		TargetCountry:              CountryUK,
		AcademicBand:               f.AcademicBand,
		Interests:                  orEmpty(f.Interests),
		ReputationVsValue:          f.ReputationVsValue,
		BudgetUSD:                  f.BudgetUSD,
		HardBudgetMustWithin:       f.HardBudgetMustWithin,
		FoundationNeed:             f.FoundationNeed,
		UCASRoute:                  f.UCASRoute,
		OxbridgeMustCover:          f.OxbridgeMustCover,
		PlacementYear:              f.PlacementYear,
		PrepLevel:                  f.PrepLevel,
		RussellGroupPreference:     f.RussellGroupPreference,
		RegionPreference:           f.RegionPreference,
		InternationalEnvImportance: f.InternationalEnvImportance,
		Intake:                     f.Intake,
		AcceptFoundation:           f.Foundation.Accepted(),
		BudgetTolerance:            f.BudgetTolerance,
		MainConcern:                f.MainConcern,
	}
}

func (f *UKForm) Schema() []FieldSpec {
	return []FieldSpec{
		singleSpec("academic_band", "学术水平", AcademicBands, 1),
		multiSpec("interests", "感兴趣的专业方向", Interests, 1, 1),
		singleSpec("reputation_vs_value", "排名与性价比", ReputationWeights, 1),
		{Key: "budget_usd", Label: "年度预算(美元)", Kind: KindNumber, Required: true, Min: 1, Step: 1},
		{Key: "hard_budget_must_within", Label: "预算是硬性上限", Kind: KindBool, Step: 1},
		singleSpec("foundation_need", "是否需要预科", FoundationNeeds, 1),
		singleSpec("ucas_route", "UCAS申请路线", UCASRoutes, 1),
		{Key: "oxbridge_must_cover", Label: "方案必须包含牛剑", Kind: KindBool, Step: 1},
		singleSpec("placement_year_preference", "带薪实习年", PlacementPreferences, 1),
		singleSpec("prep_level", "申请准备程度", PrepLevels, 1),
		singleSpec("russell_group_preference", "罗素集团偏好", RussellGroupPreferences, 1),
		singleSpec("region_preference", "地区偏好", UKRegions, 1),
		singleSpec("international_env_importance", "国际化环境的重要性", Importances, 1),
		singleSpec("intake_preference", "入学时间", UKIntakes, 1),
		{Key: "accept_foundation", Label: "是否接受预科", Kind: KindChoice, Required: true, Step: 1},
		singleSpec("budget_tolerance", "预算弹性", BudgetTolerances, 1),
		singleSpec("main_concern", "最关心的问题", MainConcerns, 1),
	}
}
