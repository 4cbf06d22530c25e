package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	accountsentity "github.com/MrSingh0729/transs-flow-final/internal/accounts/entity"
	accountshandler "github.com/MrSingh0729/transs-flow-final/internal/accounts/handler"
	accountsrepo "github.com/MrSingh0729/transs-flow-final/internal/accounts/repository"
	accountssvc "github.com/MrSingh0729/transs-flow-final/internal/accounts/service"
	chatentity "github.com/MrSingh0729/transs-flow-final/internal/chat/entity"
	chathandler "github.com/MrSingh0729/transs-flow-final/internal/chat/handler"
	chatrepo "github.com/MrSingh0729/transs-flow-final/internal/chat/repository"
	chatsvc "github.com/MrSingh0729/transs-flow-final/internal/chat/service"
	"github.com/MrSingh0729/transs-flow-final/internal/chat/sse"
	"github.com/MrSingh0729/transs-flow-final/internal/config"
	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/middleware"
	qcentity "github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	qchandler "github.com/MrSingh0729/transs-flow-final/internal/qc/handler"
	qcrepo "github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	qcsvc "github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/MrSingh0729/transs-flow-final/internal/shared/lark"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting transs-flow service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化数据库
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&accountsentity.Employee{},
		&qcentity.WorkInfo{},
		&qcentity.BTBFitmentChecksheet{},
		&qcentity.DummyTest{},
		&qcentity.DisassembleChecklist{},
		&qcentity.AssemblyAudit{},
		&qcentity.NCIssue{},
		&qcentity.ESDCompliance{},
		&qcentity.DustCount{},
		&qcentity.TestingFAI{},
		&qcentity.OperatorQualification{},
		&qcentity.DynamicForm{},
		&qcentity.DynamicFormField{},
		&qcentity.DynamicFormSubmission{},
		&chatentity.ChatRoom{},
		&chatentity.ChatRoomMember{},
		&chatentity.ChatMessage{},
	); err != nil {
		zapLogger.Warn("AutoMigrate warning", zap.Error(err))
	}

	// 手动补充索引（AutoMigrate对复合索引支持有限）
	migrationSQL := []string{
		"CREATE INDEX IF NOT EXISTS idx_qc_work_infos_emp_date ON qc_work_infos(emp_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_qc_testing_fais_emp_model ON qc_testing_fais(emp_id, model)",
		"CREATE INDEX IF NOT EXISTS idx_chat_room_members_pair ON chat_room_members(employee_id, room_id)",
		"CREATE INDEX IF NOT EXISTS idx_chat_messages_room_created ON chat_messages(room_id, created_at)",
	}
	for _, sql := range migrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			zapLogger.Warn("Migration SQL warning (may already exist)", zap.String("sql", sql), zap.Error(err))
		}
	}
	zapLogger.Info("Database migration completed")

	// Seed: 初始管理员账号
	seedAdmin(db, zapLogger)

	// 初始化Redis（可选，连不上时聊天未读数与刷新令牌降级）
	rdb := initRedis(cfg.Redis)
	if rdb != nil {
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			zapLogger.Warn("Redis unavailable, degraded mode", zap.Error(err))
			rdb = nil
		}
		cancel()
	}

	// 初始化MinIO（可选，未配置时证据照片落本地磁盘）
	minioClient := initMinIO(cfg.MinIO, zapLogger)

	// 初始化Lark客户端（可选，未配置时同步层全部跳过）
	var larkClient *lark.Client
	if cfg.Lark.AppID != "" && cfg.Lark.AppSecret != "" {
		larkClient = lark.NewClient(cfg.Lark.AppID, cfg.Lark.AppSecret, cfg.Lark.BaseURL)
		zapLogger.Info("Lark client initialized")
	} else {
		zapLogger.Warn("Lark credentials not configured, remote sync disabled")
	}

	// 同步器：larkClient为nil时所有SyncX调用直接返回nil
	var bitable larksync.Bitable
	if larkClient != nil {
		bitable = larkClient
	}
	syncer := larksync.NewSyncer(bitable, &cfg.Lark, zapLogger)

	// accounts模块
	employeeRepo := accountsrepo.NewEmployeeRepository(db)
	authSvc := accountssvc.NewAuthService(employeeRepo, rdb, cfg, larkClient, zapLogger)
	employeeSvc := accountssvc.NewEmployeeService(employeeRepo, zapLogger)
	accountsHandlers := accountshandler.NewHandlers(authSvc, employeeSvc)

	// qc模块
	qcRepos := qcrepo.NewRepositories(db)
	workInfoSvc := qcsvc.NewWorkInfoService(qcRepos.WorkInfo, syncer, zapLogger)
	checklistSvc := qcsvc.NewChecklistService(qcRepos, syncer, zapLogger)
	faiSvc := qcsvc.NewFAIService(qcRepos.TestingFAI, syncer, cfg.Server.BaseURL, zapLogger)
	formSvc := qcsvc.NewDynamicFormService(qcRepos.DynamicForm, syncer, zapLogger)
	exportSvc := qcsvc.NewExportService(qcRepos)
	uploadSvc := qcsvc.NewUploadService(minioClient, cfg.MinIO.Bucket, cfg.Upload.Dir, cfg.Upload.PublicURL, zapLogger)

	qcHandlers := &qchandler.Handlers{
		WorkInfo:    qchandler.NewWorkInfoHandler(workInfoSvc),
		Checklist:   qchandler.NewChecklistHandler(checklistSvc),
		FAI:         qchandler.NewFAIHandler(faiSvc),
		DynamicForm: qchandler.NewDynamicFormHandler(formSvc),
		Upload:      qchandler.NewUploadHandler(uploadSvc, cfg.Upload.MaxSizeMB),
		Export:      qchandler.NewExportHandler(exportSvc),
		Webhook:     qchandler.NewWebhookHandler(faiSvc, zapLogger),
	}

	// chat模块
	hub := sse.NewHub(zapLogger)
	chatRepo := chatrepo.NewChatRepository(db)
	chatSvc := chatsvc.NewChatService(chatRepo, hub, rdb, zapLogger)
	chatHandlers := chathandler.NewChatHandler(chatSvc, hub)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/v1/chat/stream"})))

	registerRoutes(router, accountsHandlers, qcHandlers, chatHandlers, cfg)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: 0, // Disable for SSE long-lived connections
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	if cfg.Host == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func initMinIO(cfg config.MinIOConfig, zapLogger *zap.Logger) *minio.Client {
	if cfg.Endpoint == "" {
		zapLogger.Warn("MinIO not configured, evidence photos stored on local disk")
		return nil
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		zapLogger.Warn("MinIO init failed, falling back to local disk", zap.Error(err))
		return nil
	}
	zapLogger.Info("MinIO client initialized", zap.String("endpoint", cfg.Endpoint))
	return client
}

// seedAdmin 首次启动时创建默认管理员，工号admin
func seedAdmin(db *gorm.DB, zapLogger *zap.Logger) {
	var count int64
	db.Model(&accountsentity.Employee{}).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_INITIAL_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		zapLogger.Warn("Failed to hash admin password", zap.Error(err))
		return
	}

	admin := &accountsentity.Employee{
		ID:           "admin000000000000000000000000000",
		EmployeeID:   "admin",
		FullName:     "Administrator",
		PasswordHash: string(hash),
		Role:         accountsentity.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		zapLogger.Warn("Failed to seed admin account", zap.Error(err))
		return
	}
	zapLogger.Info("Seeded default admin account", zap.String("employee_id", "admin"))
}

func registerRoutes(r *gin.Engine, accounts *accountshandler.Handlers, qc *qchandler.Handlers, chat *chathandler.ChatHandler, cfg *config.Config) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// 静态文件服务 - 本地上传的证据照片
	r.Static("/evidence", filepath.Join(cfg.Upload.Dir, "evidence"))

	// FAI公开确认页（QE扫码访问，无需登录）
	public := r.Group("/public")
	{
		public.GET("/fai/:token", qc.FAI.PublicView)
		public.PUT("/fai/:token", qc.FAI.QEConfirm)
		public.POST("/fai/:token/confirm", qc.FAI.QEConfirm)
	}

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 认证（无需登录）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", accounts.Auth.Login)
			auth.POST("/refresh", accounts.Auth.Refresh)
			auth.GET("/lark/login", accounts.Auth.LarkLogin)
			auth.GET("/lark/callback", accounts.Auth.LarkCallback)
		}

		// Webhook路由（无需认证，Lark回调使用）
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/lark", qc.Webhook.Handle)
		}

		// 需要认证的接口
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			// 当前用户
			authorized.GET("/auth/me", accounts.Auth.Me)
			authorized.POST("/auth/logout", accounts.Auth.Logout)

			// 员工管理（管理员）
			// 看板对PQE等角色开放，不要求账号管理权限
			authorized.GET("/employees/dashboard", middleware.RequirePermission(accountsentity.ActionViewDashboard), accounts.Employee.Dashboard)

			employees := authorized.Group("/employees", middleware.RequirePermission(accountsentity.ActionManageEmployees))
			{
				employees.GET("", accounts.Employee.List)
				employees.POST("", accounts.Employee.Create)
				employees.POST("/import", accounts.Employee.Import)
				employees.GET("/:id", accounts.Employee.Get)
				employees.PUT("/:id", accounts.Employee.Update)
				employees.DELETE("/:id", accounts.Employee.Delete)
			}

			// 巡检清单
			qcGroup := authorized.Group("/qc")
			{
				submit := middleware.RequirePermission(accountsentity.ActionSubmitChecklist)
				view := middleware.RequirePermission(accountsentity.ActionViewChecklist)

				qcGroup.POST("/work-info", submit, qc.WorkInfo.Create)
				qcGroup.GET("/work-info", view, qc.WorkInfo.List)
				qcGroup.GET("/work-info/latest", view, qc.WorkInfo.Latest)
				qcGroup.GET("/work-info/:id", view, qc.WorkInfo.Get)

				qcGroup.POST("/btb-fitment", submit, qc.Checklist.CreateBTBFitment)
				qcGroup.GET("/btb-fitment", view, qc.Checklist.ListBTBFitment)
				qcGroup.GET("/btb-fitment/:id", view, qc.Checklist.GetBTBFitment)
				qcGroup.GET("/btb-fitment/:id/export", middleware.RequirePermission(accountsentity.ActionExportReport), qc.Export.ExportBTBChecksheet)

				qcGroup.POST("/dummy-tests", submit, qc.Checklist.CreateDummyTest)
				qcGroup.GET("/dummy-tests", view, qc.Checklist.ListDummyTests)
				qcGroup.GET("/dummy-tests/export", middleware.RequirePermission(accountsentity.ActionExportReport), qc.Export.ExportDummyTests)
				qcGroup.GET("/dummy-tests/:id", view, qc.Checklist.GetDummyTest)

				qcGroup.POST("/disassemble", submit, qc.Checklist.CreateDisassemble)
				qcGroup.GET("/disassemble", view, qc.Checklist.ListDisassembles)
				qcGroup.GET("/disassemble/:id", view, qc.Checklist.GetDisassemble)

				qcGroup.POST("/assembly-audits", submit, qc.Checklist.CreateAssemblyAudit)
				qcGroup.GET("/assembly-audits", view, qc.Checklist.ListAssemblyAudits)
				qcGroup.GET("/assembly-audits/:id", view, qc.Checklist.GetAssemblyAudit)

				qcGroup.POST("/nc-issues", submit, qc.Checklist.CreateNCIssue)
				qcGroup.GET("/nc-issues", view, qc.Checklist.ListNCIssues)
				qcGroup.GET("/nc-issues/export", middleware.RequirePermission(accountsentity.ActionExportReport), qc.Export.ExportNCIssues)
				qcGroup.GET("/nc-issues/:id", view, qc.Checklist.GetNCIssue)
				qcGroup.POST("/nc-issues/:id/close", submit, qc.Checklist.CloseNCIssue)

				qcGroup.POST("/esd-compliance", submit, qc.Checklist.CreateESDCompliance)
				qcGroup.GET("/esd-compliance", view, qc.Checklist.ListESDCompliances)
				qcGroup.GET("/esd-compliance/:id", view, qc.Checklist.GetESDCompliance)

				qcGroup.POST("/dust-counts", submit, qc.Checklist.CreateDustCount)
				qcGroup.GET("/dust-counts", view, qc.Checklist.ListDustCounts)
				qcGroup.GET("/dust-counts/:id", view, qc.Checklist.GetDustCount)

				qcGroup.POST("/operator-qualifications", submit, qc.Checklist.CreateOperatorQualification)
				qcGroup.GET("/operator-qualifications", view, qc.Checklist.ListOperatorQualifications)
				qcGroup.GET("/operator-qualifications/:id", view, qc.Checklist.GetOperatorQualification)

				qcGroup.POST("/testing-fai", submit, qc.FAI.Create)
				qcGroup.GET("/testing-fai", view, qc.FAI.List)
				qcGroup.GET("/testing-fai/:id", view, qc.FAI.Get)
				qcGroup.POST("/testing-fai/:id/confirm", middleware.RequirePermission(accountsentity.ActionQEConfirm), qc.FAI.Confirm)

				// 动态表单：定义管理需要表单管理权限，提交只需清单提交权限
				manageForms := middleware.RequirePermission(accountsentity.ActionManageForms)
				qcGroup.POST("/forms", manageForms, qc.DynamicForm.CreateForm)
				qcGroup.GET("/forms", view, qc.DynamicForm.ListForms)
				qcGroup.GET("/forms/:id", view, qc.DynamicForm.GetForm)
				qcGroup.DELETE("/forms/:id", manageForms, qc.DynamicForm.DeleteForm)
				qcGroup.POST("/forms/:id/submissions", submit, qc.DynamicForm.Submit)
				qcGroup.GET("/forms/:id/submissions", view, qc.DynamicForm.ListSubmissions)

				// 证据照片上传
				qcGroup.POST("/uploads", submit, qc.Upload.Upload)
			}

			// 聊天
			chatGroup := authorized.Group("/chat", middleware.RequirePermission(accountsentity.ActionUseChat))
			{
				chatGroup.GET("/rooms", chat.ListRooms)
				chatGroup.POST("/rooms/private", chat.OpenPrivateRoom)
				chatGroup.POST("/rooms/group", chat.CreateGroupRoom)
				chatGroup.GET("/rooms/:id/messages", chat.GetMessages)
				chatGroup.POST("/rooms/:id/messages", chat.PostMessage)
				chatGroup.GET("/stream", chat.Stream)
			}
		}
	}
}
