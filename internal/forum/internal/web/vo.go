package web

type ListReq struct {
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Keyword  string   `json:"keyword"`
}

type DetailReq struct {
	Id int64 `json:"id"`
}

type CreatePostReq struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Metrics  Metrics  `json:"metrics"`
}

type UpdatePostReq struct {
	Id       int64    `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Metrics  Metrics  `json:"metrics"`
}

type DeletePostReq struct {
	Id int64 `json:"id"`
}

type LikeReq struct {
	Id int64 `json:"id"`
}

type CreateCommentReq struct {
	PostId  int64  `json:"postId"`
	Content string `json:"content"`
}

type DeleteCommentReq struct {
	Id int64 `json:"id"`
}

type Metrics struct {
	ComputersSaved int     `json:"computersSaved"`
	MoneySaved     int64   `json:"moneySaved"`
	CO2Reduced     float64 `json:"co2Reduced"`
}

type Author struct {
	Id            int64  `json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Establishment string `json:"establishment"`
}

type Post struct {
	Id         int64    `json:"id"`
	Author     Author   `json:"author"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Pinned     bool     `json:"pinned"`
	Metrics    Metrics  `json:"metrics"`
	LikeCnt    int64    `json:"likeCnt"`
	CommentCnt int64    `json:"commentCnt"`
	Ctime      int64    `json:"ctime"`
	Utime      int64    `json:"utime"`
}

type Comment struct {
	Id      int64  `json:"id"`
	PostId  int64  `json:"postId"`
	Author  Author `json:"author"`
	Content string `json:"content"`
	Ctime   int64  `json:"ctime"`
}

type PostList struct {
	Total int    `json:"total"`
	Posts []Post `json:"posts"`
}

type PostDetail struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
	Liked    bool      `json:"liked"`
}

type LikeResult struct {
	Liked   bool  `json:"liked"`
	LikeCnt int64 `json:"likeCnt"`
}
