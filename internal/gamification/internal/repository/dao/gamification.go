// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatedPointsLog 同一个 key 的加分只会生效一次
	ErrDuplicatedPointsLog = errors.New("积分流水重复")
	ErrDuplicatedBadge     = errors.New("徽章已经获得过了")
	// ErrRecordChangedConcurrently 乐观锁没抢过别人
	ErrRecordChangedConcurrently = errors.New("记录已被并发修改")
)

//go:generate mockgen -source=./gamification.go -package=daomocks -destination=mocks/gamification.mock.go GamificationDAO
type GamificationDAO interface {
	// AddPoints 主记录和流水在一个事务里，流水 key 冲突时整体回滚
	AddPoints(ctx context.Context, l PointsLog) (uint64, error)
	FindProfileByUid(ctx context.Context, uid int64) (Profile, error)
	FindBadgesByUid(ctx context.Context, uid int64) ([]UserBadge, error)
	InsertBadge(ctx context.Context, b UserBadge) error
	Top(ctx context.Context, limit int) ([]Profile, error)
	BadgeCounts(ctx context.Context, uids []int64) (map[int64]int, error)
}

type GORMGamificationDAO struct {
	db *egorm.Component
}

func NewGORMGamificationDAO(db *egorm.Component) GamificationDAO {
	return &GORMGamificationDAO{db: db}
}

func (d *GORMGamificationDAO) AddPoints(ctx context.Context, l PointsLog) (uint64, error) {
	var total uint64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var p Profile
		res := tx.Where(Profile{Uid: l.Uid}).
			Attrs(Profile{Points: l.Change, Ctime: now, Utime: now}).
			FirstOrCreate(&p)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 已有主记录，乐观锁更新
			version := p.Version
			p.Points += l.Change
			p.Version++
			updated := tx.Model(&Profile{}).
				Where("uid = ? AND version = ?", l.Uid, version).
				Updates(map[string]any{
					"points":  p.Points,
					"version": p.Version,
					"utime":   now,
				})
			if updated.Error != nil {
				return updated.Error
			}
			if updated.RowsAffected == 0 {
				return ErrRecordChangedConcurrently
			}
		}
		total = p.Points
		l.Balance = p.Points
		l.Ctime, l.Utime = now, now
		if err := tx.Create(&l).Error; err != nil {
			if isUniqueIndexErr(err) {
				return ErrDuplicatedPointsLog
			}
			return err
		}
		return nil
	})
	return total, err
}

func (d *GORMGamificationDAO) FindProfileByUid(ctx context.Context, uid int64) (Profile, error) {
	var res Profile
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (d *GORMGamificationDAO) FindBadgesByUid(ctx context.Context, uid int64) ([]UserBadge, error) {
	var res []UserBadge
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMGamificationDAO) InsertBadge(ctx context.Context, b UserBadge) error {
	now := time.Now().UnixMilli()
	b.Ctime = now
	b.Utime = now
	err := d.db.WithContext(ctx).Create(&b).Error
	if isUniqueIndexErr(err) {
		return ErrDuplicatedBadge
	}
	return err
}

// Top 并列分数按 uid 升序，保证榜单顺序稳定
func (d *GORMGamificationDAO) Top(ctx context.Context, limit int) ([]Profile, error) {
	var res []Profile
	err := d.db.WithContext(ctx).
		Order("points DESC, uid ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMGamificationDAO) BadgeCounts(ctx context.Context, uids []int64) (map[int64]int, error) {
	var rows []struct {
		Uid int64
		Cnt int
	}
	err := d.db.WithContext(ctx).Model(&UserBadge{}).
		Select("uid, COUNT(*) AS cnt").
		Where("uid IN ?", uids).
		Group("uid").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int, len(rows))
	for _, row := range rows {
		res[row.Uid] = row.Cnt
	}
	return res, nil
}

func isUniqueIndexErr(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Profile{}, &PointsLog{}, &UserBadge{})
}

// Profile 积分主记录，等级不落库，读的时候按门槛算
type Profile struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Uid     int64  `gorm:"uniqueIndex"`
	Points  uint64
	Version int64

	Ctime int64
	Utime int64
}

type PointsLog struct {
	Id  int64  `gorm:"primaryKey,autoIncrement"`
	Key string `gorm:"type:varchar(256);uniqueIndex"`
	Uid int64  `gorm:"index"`

	Biz    string `gorm:"type:varchar(32)"`
	BizId  int64
	Action string `gorm:"type:varchar(128)"`
	// Change 本次变动，Balance 变动后的总分
	Change  uint64
	Balance uint64

	Ctime int64
	Utime int64
}

type UserBadge struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Uid      int64  `gorm:"uniqueIndex:uid_badge"`
	BadgeKey string `gorm:"type:varchar(64);uniqueIndex:uid_badge"`
	Name     string `gorm:"type:varchar(128)"`
	Icon     string `gorm:"type:varchar(32)"`

	Ctime int64
	Utime int64
}
