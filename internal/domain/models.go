// Package domain defines the persistence models for topics, articles,
// comments, and users. These types are mapped with GORM and form the core
// data layer of the discussion-board API.
package domain

import "time"

// Topic is a named category that articles belong to. Topics are seed data
// and read-only through this API.
//
// Fields:
//   - Slug: stable unique key, used as the foreign key from Article.Topic.
//   - Description: short human-readable description.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(64);primaryKey"`
	Description string `json:"description" gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an account identified by a unique username. Users are read-only
// through this API and referenced by Comment.Author at creation time.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(64);primaryKey"`
	Name      string `json:"name"       gorm:"type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"type:varchar(512)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a posted item with a voteable score, belonging to a topic and
// authored by a user.
//
// Fields:
//   - ArticleID: integer primary key.
//   - Title / Body: article content.
//   - Topic: slug of the owning Topic.
//   - Author: username of the posting User.
//   - Votes: mutable integer score; no floor or ceiling is enforced.
//   - ArticleImgURL: cover image URL.
//   - CommentCount: derived count of comments referencing this article. It is
//     computed by an aggregate join at read time and never stored, hence the
//     read-only, migration-excluded mapping.
type Article struct {
	ArticleID     int       `json:"article_id"      gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title"           gorm:"type:varchar(255);not null"`
	Topic         string    `json:"topic"           gorm:"type:varchar(64);not null;index"`
	Author        string    `json:"author"          gorm:"type:varchar(64);not null;index"`
	Body          string    `json:"body"            gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"           gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"type:varchar(512)"`
	CommentCount  int       `json:"comment_count"   gorm:"->;-:migration"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// Comment is a reply attached to an Article, authored by a User. Comments are
// created by POST and removed by a hard DELETE; they are never updated.
//
// Fields:
//   - CommentID: integer primary key.
//   - ArticleID: foreign key to the parent article (indexed).
//   - Author: username of the commenting User.
//   - Votes: integer score, zero at creation.
//   - CreatedAt: set by the server at creation time.
//   - Article: FK association; comments are cascade-deleted with their article.
type Comment struct {
	CommentID int       `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	ArticleID int       `json:"article_id" gorm:"not null;index"`
	Author    string    `json:"author"     gorm:"type:varchar(64);not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`

	Article Article `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }
