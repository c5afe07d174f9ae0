package domain

type Category string

const (
	CategoryHelp         Category = "help"
	CategorySuccessStory Category = "success-story"
	CategoryTutorial     Category = "tutorial"
	CategoryAnnouncement Category = "announcement"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryHelp, CategorySuccessStory, CategoryTutorial, CategoryAnnouncement:
		return true
	default:
		return false
	}
}

// Metrics 成功故事里晒出来的成果数字
type Metrics struct {
	ComputersSaved int
	MoneySaved     int64
	CO2Reduced     float64
}

// Author 冗余出来的作者展示信息，发帖人数据还是在 user 模块
type Author struct {
	Id            int64
	Name          string
	Role          string
	Establishment string
}

type Post struct {
	Id       int64
	Author   Author
	Title    string
	Content  string
	Category Category
	Tags     []string
	// Pinned 置顶帖在列表里永远排最前
	Pinned     bool
	Metrics    Metrics
	LikeCnt    int64
	CommentCnt int64
	Ctime      int64
	Utime      int64
}

type Comment struct {
	Id      int64
	PostId  int64
	Author  Author
	Content string
	Ctime   int64
}

// PostDetail 详情页一次性返回帖子、评论和当前用户的点赞状态
type PostDetail struct {
	Post     Post
	Comments []Comment
	Liked    bool
}
