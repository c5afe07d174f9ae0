package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./diagnostic.go -package=daomocks -destination=mocks/diagnostic.mock.go DiagnosticDAO
type DiagnosticDAO interface {
	Create(ctx context.Context, d Diagnostic) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]Diagnostic, error)
	FindById(ctx context.Context, id int64) (Diagnostic, error)
}

type GORMDiagnosticDAO struct {
	db *egorm.Component
}

func NewGORMDiagnosticDAO(db *egorm.Component) DiagnosticDAO {
	return &GORMDiagnosticDAO{
		db: db,
	}
}

func (d *GORMDiagnosticDAO) Create(ctx context.Context, diag Diagnostic) (int64, error) {
	now := time.Now().UnixMilli()
	diag.Ctime = now
	diag.Utime = now
	err := d.db.WithContext(ctx).Create(&diag).Error
	return diag.Id, err
}

func (d *GORMDiagnosticDAO) FindByUid(ctx context.Context, uid int64) ([]Diagnostic, error) {
	var res []Diagnostic
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *GORMDiagnosticDAO) FindById(ctx context.Context, id int64) (Diagnostic, error) {
	var res Diagnostic
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Diagnostic{})
}

// Diagnostic 提交即定稿，后续不会再更新
type Diagnostic struct {
	Id  int64  `gorm:"primaryKey,autoIncrement"`
	SN  string `gorm:"type:varchar(256);unique"`
	Uid int64  `gorm:"index"`

	Answers sqlx.JsonColumn[AnswerSet] `gorm:"type:json"`
	Results sqlx.JsonColumn[Results]   `gorm:"type:json"`

	Ctime int64
	Utime int64
}

type AnswerSet struct {
	EstablishmentType string   `json:"establishmentType"`
	ComputerCount     int      `json:"computerCount"`
	CurrentOS         string   `json:"currentOS"`
	Budget            float64  `json:"budgetLicenses"`
	HasITStaff        bool     `json:"hasITStaff"`
	MainConcerns      []string `json:"mainConcerns"`
	Readiness         string   `json:"readinessLevel"`
}

type Results struct {
	DependencyScore      int     `json:"dependencyScore"`
	PotentialSavings     Savings `json:"potentialSavings"`
	ActionPlan           []Phase `json:"actionPlan"`
	RecommendedSolutions []int64 `json:"recommendedSolutions"`
}

type Savings struct {
	Money     int64   `json:"money"`
	CO2       float64 `json:"co2"`
	Computers int     `json:"computers"`
}

type Phase struct {
	Phase      string   `json:"phase"`
	Title      string   `json:"title"`
	Tasks      []string `json:"tasks"`
	Duration   string   `json:"duration"`
	Savings    int64    `json:"savings"`
	Difficulty int      `json:"difficulty"`
}
