package models

import "unipick/pkg/validation"

// AustraliaForm holds the Australian survey answers.
type AustraliaForm struct {
	AcademicBand          AcademicBand     `json:"academic_band" validate:"required,option"`
	Interests             []Interest       `json:"interests" validate:"required,min=1,dive,option"`
	ReputationVsValue     ReputationWeight `json:"reputation_vs_value" validate:"required,option"`
	BudgetUSD             int              `json:"budget_usd" validate:"required,gt=0"`
	HardBudgetMustWithin  bool             `json:"hard_budget_must_within"`
	StudyLength           StudyLength      `json:"study_length_preference" validate:"required,option"`
	Intake                AustraliaIntake  `json:"intake_preference" validate:"required,option"`
	WILPSWImportance      Importance       `json:"wil_psw_importance" validate:"required,option"`
	CareerFocusWeight     Importance       `json:"career_focus_weight" validate:"required,option"`
	CityPreferences       []City           `json:"city_preferences" validate:"required,min=1,dive,option"`
	CommunityImportance   Importance       `json:"community_importance" validate:"required,option"`
	EnglishReadiness      EnglishReadiness `json:"english_readiness" validate:"required,option"`
	LanguageCourse        Choice           `json:"accept_language_course" validate:"required,option"`
	Go8Preference         Go8Preference    `json:"go8_preference" validate:"required,option"`
	ScholarshipImportance Importance       `json:"scholarship_importance" validate:"required,option"`
	MainConcern           MainConcern      `json:"main_concern" validate:"required,option"`
}

// AustraliaPatch is a partial update; nil fields are left untouched.
type AustraliaPatch struct {
	AcademicBand          *AcademicBand     `json:"academic_band"`
	Interests             *[]Interest       `json:"interests"`
	ReputationVsValue     *ReputationWeight `json:"reputation_vs_value"`
	BudgetUSD             *int              `json:"budget_usd"`
	HardBudgetMustWithin  *bool             `json:"hard_budget_must_within"`
	StudyLength           *StudyLength      `json:"study_length_preference"`
	Intake                *AustraliaIntake  `json:"intake_preference"`
	WILPSWImportance      *Importance       `json:"wil_psw_importance"`
	CareerFocusWeight     *Importance       `json:"career_focus_weight"`
	CityPreferences       *[]City           `json:"city_preferences"`
	CommunityImportance   *Importance       `json:"community_importance"`
	EnglishReadiness      *EnglishReadiness `json:"english_readiness"`
	LanguageCourse        *Choice           `json:"accept_language_course"`
	Go8Preference         *Go8Preference    `json:"go8_preference"`
	ScholarshipImportance *Importance       `json:"scholarship_importance"`
	MainConcern           *MainConcern      `json:"main_concern"`
}

// AustraliaInput is the request input. HardExcludeLanguageCourse is always
// the negation of AcceptLanguageCourse once the question is answered.
type AustraliaInput struct {
	TargetCountry             Country          `json:"target_country"`
	AcademicBand              AcademicBand     `json:"academic_band"`
	Interests                 []Interest       `json:"interests"`
	ReputationVsValue         ReputationWeight `json:"reputation_vs_value"`
	BudgetUSD                 int              `json:"budget_usd"`
	HardBudgetMustWithin      bool             `json:"hard_budget_must_within"`
	StudyLength               StudyLength      `json:"study_length_preference"`
	Intake                    AustraliaIntake  `json:"intake_preference"`
	WILPSWImportance          Importance       `json:"wil_psw_importance"`
	CareerFocusWeight         Importance       `json:"career_focus_weight"`
	CityPreferences           []City           `json:"city_preferences"`
	CommunityImportance       Importance       `json:"community_importance"`
	EnglishReadiness          EnglishReadiness `json:"english_readiness"`
	AcceptLanguageCourse      bool             `json:"accept_language_course"`
	HardExcludeLanguageCourse bool             `json:"hard_exclude_language_course"`
	Go8Preference             Go8Preference    `json:"go8_preference"`
	ScholarshipImportance     Importance       `json:"scholarship_importance"`
	MainConcern               MainConcern      `json:"main_concern"`
}

func NewAustraliaForm() *AustraliaForm {
	return &AustraliaForm{}
}

func (f *AustraliaForm) Country() Country { return CountryAustralia }

func (f *AustraliaForm) Apply(p AustraliaPatch) {
	set(&f.AcademicBand, p.AcademicBand)
	setSlice(&f.Interests, p.Interests)
	set(&f.ReputationVsValue, p.ReputationVsValue)
	set(&f.BudgetUSD, p.BudgetUSD)
	set(&f.HardBudgetMustWithin, p.HardBudgetMustWithin)
	set(&f.StudyLength, p.StudyLength)
	set(&f.Intake, p.Intake)
	set(&f.WILPSWImportance, p.WILPSWImportance)
	set(&f.CareerFocusWeight, p.CareerFocusWeight)
	setSlice(&f.CityPreferences, p.CityPreferences)
	set(&f.CommunityImportance, p.CommunityImportance)
	set(&f.EnglishReadiness, p.EnglishReadiness)
	set(&f.LanguageCourse, p.LanguageCourse)
	set(&f.Go8Preference, p.Go8Preference)
	set(&f.ScholarshipImportance, p.ScholarshipImportance)
	set(&f.MainConcern, p.MainConcern)
}

func (f *AustraliaForm) ApplyJSON(data []byte) error {
	var p AustraliaPatch
	if err := decodePatch(data, &p); err != nil {
		return err
	}
	f.Apply(p)
	return nil
}

func (f *AustraliaForm) Toggle(field, option string) (err error) {
	switch field {
	case "interests":
		f.Interests, err = toggleOption(f.Interests, field, option)
	case "city_preferences":
		f.CityPreferences, err = toggleOption(f.CityPreferences, field, option)
	default:
		return unknownField(f.Country(), field)
	}
	return err
}

func (f *AustraliaForm) Validate() FieldErrors {
	return validation.Fields(f)
}

func (f *AustraliaForm) Steps() int { return 1 }

func (f *AustraliaForm) ValidateStep(int) FieldErrors {
	return f.Validate()
}

func (f *AustraliaForm) Input() any {
	return AustraliaInput{
		TargetCountry:             CountryAustralia,
		AcademicBand:              f.AcademicBand,
		Interests:                 orEmpty(f.Interests),
		ReputationVsValue:         f.ReputationVsValue,
		BudgetUSD:                 f.BudgetUSD,
		HardBudgetMustWithin:      f.HardBudgetMustWithin,
		StudyLength:               f.StudyLength,
		Intake:                    f.Intake,
		WILPSWImportance:          f.WILPSWImportance,
		CareerFocusWeight:         f.CareerFocusWeight,
		CityPreferences:           orEmpty(f.CityPreferences),
		CommunityImportance:       f.CommunityImportance,
		EnglishReadiness:          f.EnglishReadiness,
		AcceptLanguageCourse:      f.LanguageCourse.Accepted(),
		HardExcludeLanguageCourse: f.LanguageCourse.Rejected(),
		Go8Preference:             f.Go8Preference,
		ScholarshipImportance:     f.ScholarshipImportance,
		MainConcern:               f.MainConcern,
	}
}

func (f *AustraliaForm) Schema() []FieldSpec {
	return []FieldSpec{
		singleSpec("academic_band", "学术水平", AcademicBands, 1),
		multiSpec("interests", "感兴趣的专业方向", Interests, 1, 1),
		singleSpec("reputation_vs_value", "排名与性价比", ReputationWeights, 1),
		{Key: "budget_usd", Label: "年度预算(美元)", Kind: KindNumber, Required: true, Min: 1, Step: 1},
		{Key: "hard_budget_must_within", Label: "预算是硬性上限", Kind: KindBool, Step: 1},
		singleSpec("study_length_preference", "学制偏好", StudyLengths, 1),
		singleSpec("intake_preference", "入学时间", AustraliaIntakes, 1),
		singleSpec("wil_psw_importance", "实习与毕业工签的重要性", Importances, 1),
		singleSpec("career_focus_weight", "就业导向权重", Importances, 1),
		multiSpec("city_preferences", "城市偏好", Cities, 1, 1),
		singleSpec("community_importance", "华人社区的重要性", Importances, 1),
		singleSpec("english_readiness", "英语成绩情况", EnglishReadinesses, 1),
		{Key: "accept_language_course", Label: "是否接受语言班", Kind: KindChoice, Required: true, Step: 1},
		singleSpec("go8_preference", "八大偏好", Go8Preferences, 1),
		singleSpec("scholarship_importance", "奖学金的重要性", Importances, 1),
		singleSpec("main_concern", "最关心的问题", MainConcerns, 1),
	}
}
