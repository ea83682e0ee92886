//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// Wire是编译期依赖注入工具:
// Step 1: 编写本文件,定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appbook "github.com/jenishs/library/internal/application/book"
	appmember "github.com/jenishs/library/internal/application/member"
	appstats "github.com/jenishs/library/internal/application/stats"
	apptxn "github.com/jenishs/library/internal/application/transaction"
	"github.com/jenishs/library/internal/domain/book"
	"github.com/jenishs/library/internal/domain/member"
	"github.com/jenishs/library/internal/infrastructure/config"
	"github.com/jenishs/library/internal/infrastructure/persistence/mysql"
	"github.com/jenishs/library/internal/interface/http/handler"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	mysql.NewDB, // 创建MySQL连接(内部执行AutoMigrate)
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,        // 图书仓储
	mysql.NewMemberRepository,      // 会员仓储
	mysql.NewTransactionRepository, // 借阅记录仓储
	mysql.NewTxManager,             // 事务管理器
	// 用例层依赖TxManager接口,绑定到mysql实现
	wire.Bind(new(apptxn.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,   // 图书领域服务
	member.NewService, // 会员领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewAddBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appmember.NewRegisterMemberUseCase,
	appmember.NewListMembersUseCase,
	appmember.NewUpdateMemberUseCase,
	appmember.NewDeleteMemberUseCase,
	apptxn.NewIssueBookUseCase,
	apptxn.NewReturnBookUseCase,
	apptxn.NewListTransactionsUseCase,
	appstats.NewGetStatsUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewMemberHandler,
	handler.NewTransactionHandler,
	handler.NewStatsHandler,
)

// InitializeApp 初始化整个应用
// 配置由main加载后传入(main还要用它初始化日志与HTTP Server超时)
func InitializeApp(cfg *config.Config) (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
