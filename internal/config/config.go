package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Lark     LarkConfig     `mapstructure:"lark"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	BaseURL         string        `mapstructure:"base_url"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpire  time.Duration `mapstructure:"access_token_expire"`
	RefreshTokenExpire time.Duration `mapstructure:"refresh_token_expire"`
	Issuer             string        `mapstructure:"issuer"`
}

// LarkConfig 飞书/Lark开放平台配置。BitableAppToken 是多维表格应用token，
// 各清单表的table_id按表配置。
type LarkConfig struct {
	AppID             string `mapstructure:"app_id"`
	AppSecret         string `mapstructure:"app_secret"`
	BaseURL           string `mapstructure:"base_url"`
	VerificationToken string `mapstructure:"verification_token"`
	RedirectURI       string `mapstructure:"redirect_uri"`
	BitableAppToken   string `mapstructure:"bitable_app_token"`

	// 各清单类型对应的多维表格table_id
	Tables LarkTablesConfig `mapstructure:"tables"`
}

type LarkTablesConfig struct {
	WorkInfo        string `mapstructure:"work_info"`
	BTBFitment      string `mapstructure:"btb_fitment"`
	DummyTest       string `mapstructure:"dummy_test"`
	Disassemble     string `mapstructure:"disassemble"`
	AssemblyAudit   string `mapstructure:"assembly_audit"`
	NCIssueTracking string `mapstructure:"nc_issue_tracking"`
	ESDCompliance   string `mapstructure:"esd_compliance"`
	DustCount       string `mapstructure:"dust_count"`
	TestingFAI      string `mapstructure:"testing_fai"`
	OperatorQualif  string `mapstructure:"operator_qualification"`
}

type UploadConfig struct {
	Dir       string `mapstructure:"dir"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
	PublicURL string `mapstructure:"public_url"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

func Load() (*Config, error) {
	v := viper.New()

	// 设置配置文件
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// 环境变量覆盖
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// 配置文件不存在，使用环境变量
	}

	// 环境变量覆盖配置
	bindEnvVariables(v)

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("jwt.access_token_expire", 2*time.Hour)
	v.SetDefault("jwt.refresh_token_expire", 7*24*time.Hour)
	v.SetDefault("jwt.issuer", "transs-flow")
	v.SetDefault("lark.base_url", "https://open.larksuite.com")
	v.SetDefault("upload.dir", "./uploads")
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.base_url", "SERVER_BASE_URL")

	// Database
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// MinIO
	v.BindEnv("minio.endpoint", "MINIO_ENDPOINT")
	v.BindEnv("minio.access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("minio.secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("minio.bucket", "MINIO_BUCKET")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Lark
	v.BindEnv("lark.app_id", "LARK_APP_ID")
	v.BindEnv("lark.app_secret", "LARK_APP_SECRET")
	v.BindEnv("lark.base_url", "LARK_BASE_URL")
	v.BindEnv("lark.verification_token", "LARK_VERIFICATION_TOKEN")
	v.BindEnv("lark.redirect_uri", "LARK_REDIRECT_URI")
	v.BindEnv("lark.bitable_app_token", "LARK_BITABLE_APP_TOKEN")
	v.BindEnv("lark.tables.work_info", "LARK_TABLE_WORK_INFO")
	v.BindEnv("lark.tables.btb_fitment", "LARK_TABLE_BTB_FITMENT")
	v.BindEnv("lark.tables.dummy_test", "LARK_TABLE_DUMMY_TEST")
	v.BindEnv("lark.tables.disassemble", "LARK_TABLE_DISASSEMBLE")
	v.BindEnv("lark.tables.assembly_audit", "LARK_TABLE_ASSEMBLY_AUDIT")
	v.BindEnv("lark.tables.nc_issue_tracking", "LARK_TABLE_NC_ISSUE_TRACKING")
	v.BindEnv("lark.tables.esd_compliance", "LARK_TABLE_ESD_COMPLIANCE")
	v.BindEnv("lark.tables.dust_count", "LARK_TABLE_DUST_COUNT")
	v.BindEnv("lark.tables.testing_fai", "LARK_TABLE_TESTING_FAI")
	v.BindEnv("lark.tables.operator_qualification", "LARK_TABLE_OPERATOR_QUALIFICATION")

	// Upload
	v.BindEnv("upload.dir", "UPLOAD_DIR")
}

// GetEnvOrDefault 获取环境变量，如果不存在则返回默认值
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
