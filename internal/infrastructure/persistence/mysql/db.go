package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jenishs/library/internal/infrastructure/config"
	"github.com/jenishs/library/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	// 开发环境打印SQL
	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			// 统一UTC,日期字段的零点对齐依赖这一点
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 连接池配置
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.L().Info("数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&MemberModel{},
		&TransactionModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/book/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
// 4. ISBN可为空,填写时唯一(NULL不参与唯一索引)
type BookModel struct {
	ID              uint       `gorm:"primaryKey"`
	Title           string     `gorm:"size:200;not null;comment:书名"`
	Author          string     `gorm:"size:100;not null;comment:作者"`
	ISBN            *string    `gorm:"uniqueIndex;size:20;comment:ISBN号(可选)"`
	Genre           string     `gorm:"size:50;comment:类别"`
	PublicationDate *time.Time `gorm:"type:date;comment:出版日期"`
	TotalCopies     int        `gorm:"not null;default:1;comment:馆藏副本总数"`
	AvailableCopies int        `gorm:"not null;default:1;comment:可借副本数"`
	CreatedAt       time.Time  `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// MemberModel GORM会员模型
type MemberModel struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"size:100;not null;comment:姓名"`
	Email          string    `gorm:"uniqueIndex;size:120;not null;comment:邮箱"`
	Phone          string    `gorm:"size:20;comment:电话"`
	Address        string    `gorm:"type:text;comment:地址"`
	MembershipDate time.Time `gorm:"type:date;not null;comment:入会日期"`
	IsActive       bool      `gorm:"not null;default:true;comment:是否有效会员"`
}

// TableName 指定表名
func (MemberModel) TableName() string {
	return "members"
}

// TransactionModel GORM借阅记录模型
// 设计说明:
// 1. book_id/member_id是非拥有型外键引用,删除图书/会员前仓储层检查引用
// 2. book_title/member_name不落库,读取时JOIN填充
// 3. status只持久化issued/returned,逾期与否读取时由due_date推导
type TransactionModel struct {
	ID         uint       `gorm:"primaryKey"`
	BookID     uint       `gorm:"index;not null;comment:图书ID"`
	MemberID   uint       `gorm:"index;not null;comment:会员ID"`
	IssueDate  time.Time  `gorm:"type:date;not null;comment:借出日期"`
	DueDate    time.Time  `gorm:"type:date;not null;comment:应还日期"`
	ReturnDate *time.Time `gorm:"type:date;comment:归还日期"`
	FineAmount float64    `gorm:"type:decimal(10,2);not null;default:0;comment:罚金(元)"`
	Status     string     `gorm:"index;size:20;not null;default:issued;comment:状态(issued/returned)"`
}

// TableName 指定表名
func (TransactionModel) TableName() string {
	return "transactions"
}
