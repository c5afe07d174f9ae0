package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./solution.go -package=daomocks -destination=mocks/solution.mock.go SolutionDAO
type SolutionDAO interface {
	Insert(ctx context.Context, s Solution) (int64, error)
	List(ctx context.Context, category string, maxDifficulty int, cost string) ([]Solution, error)
	FindById(ctx context.Context, id int64) (Solution, error)
	FindByIds(ctx context.Context, ids []int64) ([]Solution, error)
}

type GORMSolutionDAO struct {
	db *egorm.Component
}

func NewGORMSolutionDAO(db *egorm.Component) SolutionDAO {
	return &GORMSolutionDAO{
		db: db,
	}
}

func (d *GORMSolutionDAO) Insert(ctx context.Context, s Solution) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := d.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

// List 筛选条件都是可选的，评分高的在前
func (d *GORMSolutionDAO) List(ctx context.Context, category string, maxDifficulty int, cost string) ([]Solution, error) {
	var res []Solution
	query := d.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if maxDifficulty > 0 {
		query = query.Where("difficulty <= ?", maxDifficulty)
	}
	if cost != "" {
		query = query.Where("cost = ?", cost)
	}
	err := query.Order("rating DESC").Find(&res).Error
	return res, err
}

func (d *GORMSolutionDAO) FindById(ctx context.Context, id int64) (Solution, error) {
	var res Solution
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *GORMSolutionDAO) FindByIds(ctx context.Context, ids []int64) ([]Solution, error) {
	var res []Solution
	err := d.db.WithContext(ctx).Find(&res, "id IN ?", ids).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Solution{})
}

// Solution 可筛选的字段单独成列，其余嵌套文档存 json
type Solution struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Name     string `gorm:"type:varchar(256)"`
	Category string `gorm:"type:varchar(32);index"`

	Cost        string  `gorm:"type:varchar(32);index"`
	Difficulty  int     `gorm:"index"`
	Rating      float64 `gorm:"index"`
	UsedByCount int

	Logo string `gorm:"type:varchar(512)"`

	Desc           sqlx.JsonColumn[Desc]           `gorm:"type:json"`
	AlternativeTo  sqlx.JsonColumn[[]string]       `gorm:"type:json"`
	Advantages     sqlx.JsonColumn[[]string]       `gorm:"type:json"`
	Disadvantages  sqlx.JsonColumn[[]string]       `gorm:"type:json"`
	Comparison     sqlx.JsonColumn[Comparison]     `gorm:"type:json"`
	Resources      sqlx.JsonColumn[Resources]      `gorm:"type:json"`
	TargetAudience sqlx.JsonColumn[TargetAudience] `gorm:"type:json"`
	Tags           sqlx.JsonColumn[[]string]       `gorm:"type:json"`

	Ctime int64
	Utime int64
}

type Desc struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

type Comparison struct {
	CostPerDevice   float64 `json:"costPerDevice"`
	CO2Impact       float64 `json:"co2Impact"`
	MaintenanceTime float64 `json:"maintenanceTime"`
	RequiredRAM     float64 `json:"requiredRAM"`
}

type Resources struct {
	OfficialSite  string `json:"officialSite"`
	Documentation string `json:"documentation"`
	TutorialVideo string `json:"tutorialVideo"`
	InstallGuide  string `json:"installGuide"`
}

type TargetAudience struct {
	EstablishmentTypes []string `json:"establishmentTypes"`
	TechnicalLevels    []string `json:"technicalLevels"`
}
