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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./post.go -package=daomocks -destination=mocks/post.mock.go ForumDAO
type ForumDAO interface {
	InsertPost(ctx context.Context, p Post) (int64, error)
	UpdatePost(ctx context.Context, p Post) error
	DeletePost(ctx context.Context, id int64) error
	FindPostById(ctx context.Context, id int64) (Post, error)
	ListPosts(ctx context.Context, category string, tags []string, keyword string) ([]Post, error)

	InsertComment(ctx context.Context, c Comment) (int64, error)
	DeleteComment(ctx context.Context, id int64) error
	FindCommentById(ctx context.Context, id int64) (Comment, error)
	FindCommentsByPostId(ctx context.Context, postId int64) ([]Comment, error)

	// LikeToggle 点赞明细行和帖子上的计数器在一个事务里一起动
	LikeToggle(ctx context.Context, postId, uid int64) (bool, error)
	Liked(ctx context.Context, postId, uid int64) (bool, error)
}

type GORMForumDAO struct {
	db *egorm.Component
}

func NewGORMForumDAO(db *egorm.Component) ForumDAO {
	return &GORMForumDAO{
		db: db,
	}
}

func (d *GORMForumDAO) InsertPost(ctx context.Context, p Post) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *GORMForumDAO) UpdatePost(ctx context.Context, p Post) error {
	return d.db.WithContext(ctx).Model(&Post{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"title":    p.Title,
			"content":  p.Content,
			"category": p.Category,
			"tags":     p.Tags,
			"metrics":  p.Metrics,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

// DeletePost 连带删掉评论和点赞明细
func (d *GORMForumDAO) DeletePost(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Delete(&Post{}, "id = ?", id).Error
		if err != nil {
			return err
		}
		err = tx.Delete(&Comment{}, "post_id = ?", id).Error
		if err != nil {
			return err
		}
		return tx.Delete(&UserLike{}, "post_id = ?", id).Error
	})
}

func (d *GORMForumDAO) FindPostById(ctx context.Context, id int64) (Post, error) {
	var p Post
	err := d.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

// ListPosts 筛选都是可选的，置顶的在前，其余按时间倒序
func (d *GORMForumDAO) ListPosts(ctx context.Context, category string, tags []string, keyword string) ([]Post, error) {
	var res []Post
	query := d.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if len(tags) > 0 {
		cond := d.db.Where("JSON_CONTAINS(`tags`, JSON_QUOTE(?))", tags[0])
		for _, tag := range tags[1:] {
			cond = cond.Or("JSON_CONTAINS(`tags`, JSON_QUOTE(?))", tag)
		}
		query = query.Where(cond)
	}
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where(
			d.db.Where("title LIKE ?", pattern).
				Or("content LIKE ?", pattern))
	}
	err := query.Order("pinned DESC, ctime DESC").Find(&res).Error
	return res, err
}

func (d *GORMForumDAO) InsertComment(ctx context.Context, c Comment) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&c).Error
		if err != nil {
			return err
		}
		return tx.Model(&Post{}).
			Where("id = ?", c.PostId).
			Updates(map[string]any{
				"comment_cnt": gorm.Expr("`comment_cnt` + 1"),
				"utime":       now,
			}).Error
	})
	return c.Id, err
}

func (d *GORMForumDAO) DeleteComment(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Comment
		err := tx.First(&c, "id = ?", id).Error
		if err != nil {
			return err
		}
		res := tx.Delete(&Comment{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return nil
		}
		return tx.Model(&Post{}).
			Where("id = ? AND comment_cnt > 0", c.PostId).
			Updates(map[string]any{
				"comment_cnt": gorm.Expr("`comment_cnt` - 1"),
				"utime":       now,
			}).Error
	})
}

func (d *GORMForumDAO) FindCommentById(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := d.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (d *GORMForumDAO) FindCommentsByPostId(ctx context.Context, postId int64) ([]Comment, error) {
	var res []Comment
	err := d.db.WithContext(ctx).
		Where("post_id = ?", postId).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMForumDAO) LikeToggle(ctx context.Context, postId, uid int64) (bool, error) {
	var liked bool
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("post_id = ? AND uid = ?", postId, uid).
			First(&UserLike{}).Error
		switch {
		case err == nil:
			liked = false
			return d.deleteLike(tx, postId, uid)
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return d.insertLike(tx, postId, uid)
		default:
			return err
		}
	})
	return liked, err
}

func (d *GORMForumDAO) insertLike(tx *gorm.DB, postId, uid int64) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&UserLike{
		Uid:    uid,
		PostId: postId,
		Ctime:  now,
		Utime:  now,
	}).Error
	if err != nil {
		return err
	}
	return tx.Model(&Post{}).
		Where("id = ?", postId).
		Updates(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` + 1"),
			"utime":    now,
		}).Error
}

func (d *GORMForumDAO) deleteLike(tx *gorm.DB, postId, uid int64) error {
	now := time.Now().UnixMilli()
	res := tx.
		Where("post_id = ? AND uid = ?", postId, uid).
		Delete(&UserLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	return tx.Model(&Post{}).
		Where("id = ? AND like_cnt > 0", postId).
		Updates(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` - 1"),
			"utime":    now,
		}).Error
}

func (d *GORMForumDAO) Liked(ctx context.Context, postId, uid int64) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&UserLike{}).
		Where("post_id = ? AND uid = ?", postId, uid).
		Count(&cnt).Error
	return cnt > 0, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Post{}, &Comment{}, &UserLike{})
}

type Post struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Uid      int64  `gorm:"index"`
	Title    string `gorm:"type:varchar(512)"`
	Content  string `gorm:"type:text"`
	Category string `gorm:"type:varchar(32);index"`

	Tags    sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Pinned  bool
	Metrics sqlx.JsonColumn[Metrics] `gorm:"type:json"`

	LikeCnt    int64
	CommentCnt int64

	Ctime int64
	Utime int64
}

type Metrics struct {
	ComputersSaved int     `json:"computersSaved"`
	MoneySaved     int64   `json:"moneySaved"`
	CO2Reduced     float64 `json:"co2Reduced"`
}

type Comment struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	PostId  int64  `gorm:"index"`
	Uid     int64  `gorm:"index"`
	Content string `gorm:"type:text"`

	Ctime int64
	Utime int64
}

// UserLike 点赞明细，一个人对一个帖子最多一行
type UserLike struct {
	Id     int64 `gorm:"primaryKey,autoIncrement"`
	Uid    int64 `gorm:"uniqueIndex:uid_post"`
	PostId int64 `gorm:"uniqueIndex:uid_post"`

	Ctime int64
	Utime int64
}
