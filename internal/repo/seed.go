// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file loads the canonical development dataset. The API
// never writes topics or users, so a fresh database is unusable until this
// runs (or equivalent rows are inserted out of band).
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// Seed wipes and reloads the development fixture dataset inside a single
// transaction. Child tables are cleared first to respect foreign keys.
// Integration tests rely on this exact dataset: stable topic slugs and
// usernames, article 1 holding 100 votes, and the "paper" topic having no
// articles.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&domain.Comment{}, &domain.Article{}, &domain.User{}, &domain.Topic{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}

		topics := []domain.Topic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		}
		if err := tx.Create(&topics).Error; err != nil {
			return err
		}

		users := []domain.User{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		at := func(day int) time.Time {
			return time.Date(2020, time.July, day, 12, 0, 0, 0, time.UTC)
		}
		articles := []domain.Article{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: at(9), Votes: 100, ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell.", CreatedAt: at(10), Votes: 0, ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: at(11), Votes: 0, ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: at(12), Votes: 0, ArticleImgURL: "https://images.pexels.com/photos/163185/old-retro-antique-vintage-163185.jpeg?w=700&h=700"},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us", CreatedAt: at(13), Votes: 0, ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: at(14), Votes: 0, ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"},
		}
		if err := tx.Create(&articles).Error; err != nil {
			return err
		}

		comments := []domain.Comment{
			{Body: "Oh, I've got compassion running out of my nose, pal!", ArticleID: articles[0].ArticleID, Author: "butter_bridge", Votes: 16, CreatedAt: at(20)},
			{Body: "The beautiful thing about treasure is that it exists.", ArticleID: articles[0].ArticleID, Author: "butter_bridge", Votes: 14, CreatedAt: at(21)},
			{Body: "Replacing the quiet elegance of the dark suit and tie.", ArticleID: articles[0].ArticleID, Author: "icellusedkars", Votes: 100, CreatedAt: at(22)},
			{Body: "Superficially charming", ArticleID: articles[4].ArticleID, Author: "lurker", Votes: 0, CreatedAt: at(23)},
			{Body: "This is a bad article name", ArticleID: articles[5].ArticleID, Author: "butter_bridge", Votes: 1, CreatedAt: at(24)},
		}
		return tx.Create(&comments).Error
	})
}
