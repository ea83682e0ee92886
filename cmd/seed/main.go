package main

import (
	"log"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jenishs/library/internal/infrastructure/config"
	"github.com/jenishs/library/internal/infrastructure/persistence/mysql"
	"github.com/jenishs/library/pkg/logger"
)

// seed工具:初始化示例数据,方便本地开发与前端联调
// 幂等设计:表里已有数据时直接跳过,不会重复插入
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	if err := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	db, err := mysql.NewDB(cfg)
	if err != nil {
		logger.L().Fatal("连接数据库失败", zap.Error(err))
	}

	if err := seedBooks(db); err != nil {
		logger.L().Fatal("初始化图书数据失败", zap.Error(err))
	}
	if err := seedMembers(db); err != nil {
		logger.L().Fatal("初始化会员数据失败", zap.Error(err))
	}

	logger.L().Info("示例数据初始化完成")
}

func seedBooks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&mysql.BookModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.L().Info("图书表已有数据,跳过初始化", zap.Int64("count", count))
		return nil
	}

	books := []mysql.BookModel{
		{
			Title:           "The Great Gatsby",
			Author:          "F. Scott Fitzgerald",
			ISBN:            strPtr("978-0-7432-7356-5"),
			Genre:           "Fiction",
			PublicationDate: datePtr(1925, 4, 10),
			TotalCopies:     3,
			AvailableCopies: 3,
		},
		{
			Title:           "To Kill a Mockingbird",
			Author:          "Harper Lee",
			ISBN:            strPtr("978-0-06-112008-4"),
			Genre:           "Fiction",
			PublicationDate: datePtr(1960, 7, 11),
			TotalCopies:     2,
			AvailableCopies: 2,
		},
		{
			Title:           "1984",
			Author:          "George Orwell",
			ISBN:            strPtr("978-0-452-28423-4"),
			Genre:           "Dystopian Fiction",
			PublicationDate: datePtr(1949, 6, 8),
			TotalCopies:     4,
			AvailableCopies: 4,
		},
	}

	if err := db.Create(&books).Error; err != nil {
		return err
	}
	logger.L().Info("图书数据初始化完成", zap.Int("count", len(books)))
	return nil
}

func seedMembers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&mysql.MemberModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.L().Info("会员表已有数据,跳过初始化", zap.Int64("count", count))
		return nil
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	members := []mysql.MemberModel{
		{
			Name:           "John Doe",
			Email:          "john.doe@email.com",
			Phone:          "123-456-7890",
			Address:        "123 Main St, City, State",
			MembershipDate: today,
			IsActive:       true,
		},
		{
			Name:           "Jane Smith",
			Email:          "jane.smith@email.com",
			Phone:          "098-765-4321",
			Address:        "456 Oak Ave, City, State",
			MembershipDate: today,
			IsActive:       true,
		},
	}

	if err := db.Create(&members).Error; err != nil {
		return err
	}
	logger.L().Info("会员数据初始化完成", zap.Int("count", len(members)))
	return nil
}

func strPtr(s string) *string { return &s }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
