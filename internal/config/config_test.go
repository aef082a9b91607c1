package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv 空值在 viper 里等同于未设置
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	clearEnv(t)

	_, err := load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET", "s3cret")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.Cors.AllowOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_USER", "todo")
	t.Setenv("MYSQL_ROOT_PASSWORD", "pw")
	t.Setenv("MYSQL_DATABASE", "epytodo_test")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test,http://b.test")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "todo", cfg.Database.User)
	assert.Equal(t, "pw", cfg.Database.Password)
	assert.Equal(t, "epytodo_test", cfg.Database.Name)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Cors.AllowOrigins)
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET", "from-env")

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
server:
  port: "4000"
jwt:
  secret: from-file
database:
  driver: postgres
  dsn: host=localhost user=todo dbname=epytodo
`)))

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	// 环境变量优先于配置文件
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost user=todo dbname=epytodo", cfg.Database.DSN)
}

func TestMySQLDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     "3306",
		User:     "root",
		Password: "pw",
		Name:     "epytodo",
	}
	dsn := d.MySQLDSN()
	assert.True(t, strings.HasPrefix(dsn, "root:pw@tcp(db:3306)/epytodo?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "loc=Local")
	assert.Contains(t, dsn, "charset=utf8mb4")

	d.DSN = "user:pass@tcp(other:3307)/x"
	assert.Equal(t, "user:pass@tcp(other:3307)/x", d.MySQLDSN())
}
