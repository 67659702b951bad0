package reading

import (
	"time"
)

// Progress 阅读进度实体(聚合根)
// DDD设计说明:
// 1. 每个(用户, 书)一条记录,数据库唯一索引保证
// 2. 首次访问时懒创建(默认第1页/第1章/0分钟/未读完)
// 3. 进度没有状态机约束:currentPage可以自由前进或后退,
//    completed可以在未读到最后一页时置true.这是刻意的简化
type Progress struct {
	ID              uint
	UserID          uint // 读者用户ID
	BookID          uint // 书籍(商品)ID
	CurrentPage     int  // 当前页码(>=1)
	LastReadChapter int  // 最近阅读的章节号
	ReadingTime     int  // 累计阅读时长(分钟,客户端累计后上报)
	Completed       bool // 是否已读完
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewProgress 创建默认阅读进度(懒创建用)
// 默认值:currentPage=1, lastReadChapter=1, readingTime=0, completed=false
func NewProgress(userID, bookID uint) *Progress {
	now := time.Now()
	return &Progress{
		UserID:          userID,
		BookID:          bookID,
		CurrentPage:     1,
		LastReadChapter: 1,
		ReadingTime:     0,
		Completed:       false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Overwrite 全量覆盖进度的三个可写字段
// 注意:是整体替换而非增量累加,调用方(客户端)负责
// 自行从currentPage推导lastReadChapter、自行累计readingTime
func (p *Progress) Overwrite(currentPage, lastReadChapter, readingTime int) {
	p.CurrentPage = currentPage
	p.LastReadChapter = lastReadChapter
	p.ReadingTime = readingTime
	p.UpdatedAt = time.Now()
}

// MarkCompleted 标记读完
func (p *Progress) MarkCompleted() {
	p.Completed = true
	p.UpdatedAt = time.Now()
}
