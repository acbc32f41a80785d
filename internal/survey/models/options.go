package models

import "slices"

// Option values are the exact wire literals the backend matches on; they
// must round-trip byte for byte.

// AcademicBand is the self-assessed academic level (all countries except the legacy US form).
type AcademicBand string

const (
	AcademicTop       AcademicBand = "顶尖(GPA 3.8+/均分90+)"
	AcademicExcellent AcademicBand = "优秀(GPA 3.5-3.8/均分85-90)"
	AcademicGood      AcademicBand = "良好(GPA 3.0-3.5/均分80-85)"
	AcademicAverage   AcademicBand = "一般(GPA 3.0以下/均分80以下)"
)

var AcademicBands = []AcademicBand{AcademicTop, AcademicExcellent, AcademicGood, AcademicAverage}

func (v AcademicBand) IsValid() bool { return slices.Contains(AcademicBands, v) }

// Interest is a field of study; multi-select.
type Interest string

const (
	InterestComputing   Interest = "计算机/IT"
	InterestBusiness    Interest = "商科/金融"
	InterestEngineering Interest = "工程"
	InterestMedicine    Interest = "医学/健康"
	InterestLaw         Interest = "法律"
	InterestMedia       Interest = "传媒/艺术"
	InterestEducation   Interest = "教育"
	InterestScience     Interest = "理科基础"
	InterestSocial      Interest = "人文社科"
)

var Interests = []Interest{
	InterestComputing, InterestBusiness, InterestEngineering, InterestMedicine,
	InterestLaw, InterestMedia, InterestEducation, InterestScience, InterestSocial,
}

func (v Interest) IsValid() bool { return slices.Contains(Interests, v) }

// ReputationWeight trades ranking against value for money.
type ReputationWeight string

const (
	ReputationFirst    ReputationWeight = "排名优先"
	ReputationBalanced ReputationWeight = "两者平衡"
	ValueFirst         ReputationWeight = "性价比优先"
)

var ReputationWeights = []ReputationWeight{ReputationFirst, ReputationBalanced, ValueFirst}

func (v ReputationWeight) IsValid() bool { return slices.Contains(ReputationWeights, v) }

// Importance is a generic four-point importance scale.
type Importance string

const (
	ImportanceCritical Importance = "非常重要"
	ImportanceHigh     Importance = "比较重要"
	ImportanceMedium   Importance = "一般"
	ImportanceLow      Importance = "不重要"
)

var Importances = []Importance{ImportanceCritical, ImportanceHigh, ImportanceMedium, ImportanceLow}

func (v Importance) IsValid() bool { return slices.Contains(Importances, v) }

// MainConcern is the family's biggest worry.
type MainConcern string

const (
	ConcernCareer      MainConcern = "就业前景"
	ConcernRanking     MainConcern = "学校排名"
	ConcernCost        MainConcern = "费用"
	ConcernSafety      MainConcern = "安全"
	ConcernImmigration MainConcern = "移民机会"
	ConcernPressure    MainConcern = "学习压力"
)

var MainConcerns = []MainConcern{ConcernCareer, ConcernRanking, ConcernCost, ConcernSafety, ConcernImmigration, ConcernPressure}

func (v MainConcern) IsValid() bool { return slices.Contains(MainConcerns, v) }

// BudgetTolerance states how far the budget may stretch (UK, Singapore).
type BudgetTolerance string

const (
	ToleranceStrict     BudgetTolerance = "严格不超"
	Tolerance10Percent  BudgetTolerance = "可超10%"
	Tolerance20Percent  BudgetTolerance = "可超20%"
	ToleranceNegotiable BudgetTolerance = "好学校可以商量"
)

var BudgetTolerances = []BudgetTolerance{ToleranceStrict, Tolerance10Percent, Tolerance20Percent, ToleranceNegotiable}

func (v BudgetTolerance) IsValid() bool { return slices.Contains(BudgetTolerances, v) }

// Australia

type StudyLength string

const (
	StudyShortest StudyLength = "越短越好"
	StudyStandard StudyLength = "标准学制即可"
	StudyLonger   StudyLength = "不介意更长(含荣誉学位)"
)

var StudyLengths = []StudyLength{StudyShortest, StudyStandard, StudyLonger}

func (v StudyLength) IsValid() bool { return slices.Contains(StudyLengths, v) }

type AustraliaIntake string

const (
	IntakeFebruary AustraliaIntake = "2月入学"
	IntakeJuly     AustraliaIntake = "7月入学"
	IntakeAnyAU    AustraliaIntake = "都可以"
)

var AustraliaIntakes = []AustraliaIntake{IntakeFebruary, IntakeJuly, IntakeAnyAU}

func (v AustraliaIntake) IsValid() bool { return slices.Contains(AustraliaIntakes, v) }

// City is an Australian city preference; multi-select.
type City string

const (
	CitySydney    City = "悉尼"
	CityMelbourne City = "墨尔本"
	CityBrisbane  City = "布里斯班"
	CityAdelaide  City = "阿德莱德"
	CityPerth     City = "珀斯"
	CityCanberra  City = "堪培拉"
	CityAny       City = "不限"
)

var Cities = []City{CitySydney, CityMelbourne, CityBrisbane, CityAdelaide, CityPerth, CityCanberra, CityAny}

func (v City) IsValid() bool { return slices.Contains(Cities, v) }

type EnglishReadiness string

const (
	EnglishReady      EnglishReadiness = "已达标"
	EnglishClose      EnglishReadiness = "差一点(0.5分以内)"
	EnglishFar        EnglishReadiness = "差距较大"
	EnglishNotStarted EnglishReadiness = "尚未考试"
)

var EnglishReadinesses = []EnglishReadiness{EnglishReady, EnglishClose, EnglishFar, EnglishNotStarted}

func (v EnglishReadiness) IsValid() bool { return slices.Contains(EnglishReadinesses, v) }

type Go8Preference string

const (
	Go8Required  Go8Preference = "必须八大"
	Go8Preferred Go8Preference = "优先八大"
	Go8Neutral   Go8Preference = "无所谓"
)

var Go8Preferences = []Go8Preference{Go8Required, Go8Preferred, Go8Neutral}

func (v Go8Preference) IsValid() bool { return slices.Contains(Go8Preferences, v) }

// United Kingdom

type FoundationNeed string

const (
	FoundationNeeded    FoundationNeed = "需要预科"
	FoundationNotNeeded FoundationNeed = "不需要预科"
	FoundationUnsure    FoundationNeed = "不确定"
)

var FoundationNeeds = []FoundationNeed{FoundationNeeded, FoundationNotNeeded, FoundationUnsure}

func (v FoundationNeed) IsValid() bool { return slices.Contains(FoundationNeeds, v) }

type UCASRoute string

const (
	UCASStandard UCASRoute = "常规UCAS申请(1月截止)"
	UCASOxbridge UCASRoute = "冲刺牛剑(10月15日截止)"
	UCASMedicine UCASRoute = "医学/牙医/兽医(10月15日截止)"
	UCASUnsure   UCASRoute = "不确定"
)

var UCASRoutes = []UCASRoute{UCASStandard, UCASOxbridge, UCASMedicine, UCASUnsure}

func (v UCASRoute) IsValid() bool { return slices.Contains(UCASRoutes, v) }

type PlacementPreference string

const (
	PlacementWanted   PlacementPreference = "希望有带薪实习年"
	PlacementOptional PlacementPreference = "可有可无"
	PlacementNone     PlacementPreference = "不需要"
)

var PlacementPreferences = []PlacementPreference{PlacementWanted, PlacementOptional, PlacementNone}

func (v PlacementPreference) IsValid() bool { return slices.Contains(PlacementPreferences, v) }

type PrepLevel string

const (
	PrepReady    PrepLevel = "准备充分"
	PrepPartial  PrepLevel = "部分准备"
	PrepStarting PrepLevel = "刚开始"
)

var PrepLevels = []PrepLevel{PrepReady, PrepPartial, PrepStarting}

func (v PrepLevel) IsValid() bool { return slices.Contains(PrepLevels, v) }

type RussellGroupPreference string

const (
	RussellRequired  RussellGroupPreference = "必须罗素集团"
	RussellPreferred RussellGroupPreference = "优先罗素集团"
	RussellNeutral   RussellGroupPreference = "无所谓"
)

var RussellGroupPreferences = []RussellGroupPreference{RussellRequired, RussellPreferred, RussellNeutral}

func (v RussellGroupPreference) IsValid() bool { return slices.Contains(RussellGroupPreferences, v) }

type UKRegion string

const (
	RegionLondon   UKRegion = "伦敦"
	RegionEngland  UKRegion = "英格兰其他地区"
	RegionScotland UKRegion = "苏格兰"
	RegionWalesNI  UKRegion = "威尔士/北爱尔兰"
	RegionAnyUK    UKRegion = "不限"
)

var UKRegions = []UKRegion{RegionLondon, RegionEngland, RegionScotland, RegionWalesNI, RegionAnyUK}

func (v UKRegion) IsValid() bool { return slices.Contains(UKRegions, v) }

type UKIntake string

const (
	IntakeSeptember UKIntake = "9月入学"
	IntakeJanuary   UKIntake = "1月入学"
	IntakeAnyUK     UKIntake = "都可以"
)

var UKIntakes = []UKIntake{IntakeSeptember, IntakeJanuary, IntakeAnyUK}

func (v UKIntake) IsValid() bool { return slices.Contains(UKIntakes, v) }

// Singapore

type BondAcceptance string

const (
	BondAccepted    BondAcceptance = "可以接受服务期"
	BondConditional BondAcceptance = "视情况而定"
	BondRefused     BondAcceptance = "不接受服务期"
)

var BondAcceptances = []BondAcceptance{BondAccepted, BondConditional, BondRefused}

func (v BondAcceptance) IsValid() bool { return slices.Contains(BondAcceptances, v) }

type Orientation string

const (
	OrientationResearch Orientation = "科研导向"
	OrientationCareer   Orientation = "就业导向"
	OrientationBoth     Orientation = "两者兼顾"
)

var Orientations = []Orientation{OrientationResearch, OrientationCareer, OrientationBoth}

func (v Orientation) IsValid() bool { return slices.Contains(Orientations, v) }

type InterviewAcceptance string

const (
	InterviewAndPortfolio InterviewAcceptance = "可以接受面试和作品集"
	InterviewOnly         InterviewAcceptance = "只接受面试"
	InterviewNeither      InterviewAcceptance = "都不接受"
)

var InterviewAcceptances = []InterviewAcceptance{InterviewAndPortfolio, InterviewOnly, InterviewNeither}

func (v InterviewAcceptance) IsValid() bool { return slices.Contains(InterviewAcceptances, v) }

// Legacy United States wizard

type Grade string

const (
	GradeTen      Grade = "高一"
	GradeEleven   Grade = "高二"
	GradeTwelve   Grade = "高三"
	GradeGraduate Grade = "已毕业"
)

var Grades = []Grade{GradeTen, GradeEleven, GradeTwelve, GradeGraduate}

func (v Grade) IsValid() bool { return slices.Contains(Grades, v) }

type GPABand string

const (
	GPA39Plus GPABand = "3.9+"
	GPA37to39 GPABand = "3.7-3.9"
	GPA35to37 GPABand = "3.5-3.7"
	GPABelow  GPABand = "3.5以下"
)

var GPABands = []GPABand{GPA39Plus, GPA37to39, GPA35to37, GPABelow}

func (v GPABand) IsValid() bool { return slices.Contains(GPABands, v) }

type Activity string

const (
	ActivityCompetition  Activity = "学科竞赛"
	ActivityResearch     Activity = "科研项目"
	ActivityLeadership   Activity = "社团领导"
	ActivityVolunteering Activity = "志愿服务"
	ActivitySports       Activity = "体育特长"
	ActivityArts         Activity = "艺术特长"
	ActivityInternship   Activity = "实习经历"
	ActivityStartup      Activity = "创业项目"
)

var Activities = []Activity{
	ActivityCompetition, ActivityResearch, ActivityLeadership, ActivityVolunteering,
	ActivitySports, ActivityArts, ActivityInternship, ActivityStartup,
}

func (v Activity) IsValid() bool { return slices.Contains(Activities, v) }

type SchoolType string

const (
	SchoolResearch    SchoolType = "综合性大学"
	SchoolLiberalArts SchoolType = "文理学院"
	SchoolEither      SchoolType = "都可以"
)

var SchoolTypes = []SchoolType{SchoolResearch, SchoolLiberalArts, SchoolEither}

func (v SchoolType) IsValid() bool { return slices.Contains(SchoolTypes, v) }

type BudgetBand string

const (
	BudgetUnder30 BudgetBand = "30万以下"
	Budget30to50  BudgetBand = "30-50万"
	Budget50to80  BudgetBand = "50-80万"
	BudgetOver80  BudgetBand = "80万以上"
)

var BudgetBands = []BudgetBand{BudgetUnder30, Budget30to50, Budget50to80, BudgetOver80}

func (v BudgetBand) IsValid() bool { return slices.Contains(BudgetBands, v) }

type FamilyExpectation string

const (
	ExpectPrestige FamilyExpectation = "名校优先"
	ExpectMajor    FamilyExpectation = "专业优先"
	ExpectCareer   FamilyExpectation = "就业优先"
	ExpectChild    FamilyExpectation = "尊重孩子意愿"
)

var FamilyExpectations = []FamilyExpectation{ExpectPrestige, ExpectMajor, ExpectCareer, ExpectChild}

func (v FamilyExpectation) IsValid() bool { return slices.Contains(FamilyExpectations, v) }

func optionStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
