package database

import (
	"fmt"
	"lab_backend/internal/config"
	"lab_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate runs auto-migration and seeds the default sheet. Shared with the
// test setup, which runs it against an in-memory database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Topic{},
		&model.Problem{},
		&model.ProblemMark{},
		&model.Attempt{},
		&model.Discussion{},
		&model.PracticeSession{},
		&model.Interview{},
		&model.JournalEntry{},
	)
	if err != nil {
		return err
	}

	seedSheet(db)
	return nil
}

// seedSheet inserts a starter problem sheet when the table is empty.
func seedSheet(db *gorm.DB) {
	var count int64
	db.Model(&model.Topic{}).Count(&count)
	if count > 0 {
		return
	}

	sheet := []struct {
		topic    string
		problems []model.Problem
	}{
		{"Arrays & Hashing", []model.Problem{
			{Slug: "two-sum", Title: "Two Sum", Difficulty: model.Easy, Platform: "LeetCode", URL: "https://leetcode.com/problems/two-sum/", Order: 1},
			{Slug: "contains-duplicate", Title: "Contains Duplicate", Difficulty: model.Easy, Platform: "LeetCode", URL: "https://leetcode.com/problems/contains-duplicate/", Order: 2},
			{Slug: "group-anagrams", Title: "Group Anagrams", Difficulty: model.Medium, Platform: "LeetCode", URL: "https://leetcode.com/problems/group-anagrams/", Order: 3},
		}},
		{"Two Pointers", []model.Problem{
			{Slug: "valid-palindrome", Title: "Valid Palindrome", Difficulty: model.Easy, Platform: "LeetCode", URL: "https://leetcode.com/problems/valid-palindrome/", Order: 1},
			{Slug: "container-with-most-water", Title: "Container With Most Water", Difficulty: model.Medium, Platform: "LeetCode", URL: "https://leetcode.com/problems/container-with-most-water/", Order: 2},
		}},
		{"Binary Search", []model.Problem{
			{Slug: "binary-search", Title: "Binary Search", Difficulty: model.Easy, Platform: "LeetCode", URL: "https://leetcode.com/problems/binary-search/", Order: 1},
			{Slug: "search-rotated-array", Title: "Search in Rotated Sorted Array", Difficulty: model.Medium, Platform: "LeetCode", URL: "https://leetcode.com/problems/search-in-rotated-sorted-array/", Order: 2},
		}},
		{"Dynamic Programming", []model.Problem{
			{Slug: "climbing-stairs", Title: "Climbing Stairs", Difficulty: model.Easy, Platform: "LeetCode", URL: "https://leetcode.com/problems/climbing-stairs/", Order: 1},
			{Slug: "longest-increasing-subsequence", Title: "Longest Increasing Subsequence", Difficulty: model.Medium, Platform: "LeetCode", URL: "https://leetcode.com/problems/longest-increasing-subsequence/", Order: 2},
			{Slug: "regular-expression-matching", Title: "Regular Expression Matching", Difficulty: model.Hard, Platform: "LeetCode", URL: "https://leetcode.com/problems/regular-expression-matching/", Order: 3},
		}},
	}

	for i, entry := range sheet {
		topic := model.Topic{Name: entry.topic, Order: i + 1}
		db.Create(&topic)
		for j := range entry.problems {
			entry.problems[j].TopicID = topic.ID
			db.Create(&entry.problems[j])
		}
	}
}
