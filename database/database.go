package database

import (
	"fmt"
	"os"
	"time"

	"github.com/euromove/euromove-server-go/sentrylog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	logger2 "gorm.io/gorm/logger"
)

var (
	DBConn *gorm.DB
)

// InitDatabase opens the database connection. The default is a local SQLite
// file, which is how the site is deployed; set DB_DIALECT=mysql to use a
// MySQL server instead.
func InitDatabase() {
	var err error
	var dialector gorm.Dialector

	if os.Getenv("DB_DIALECT") == "mysql" {
		mysqlCredentials := fmt.Sprintf(
			"%s:%s@%s(%s:%s)/%s?charset=utf8&parseTime=True&loc=Local&interpolateParams=true",
			os.Getenv("MYSQL_USER"),
			os.Getenv("MYSQL_PASSWORD"),
			os.Getenv("MYSQL_PROTOCOL"),
			os.Getenv("MYSQL_HOST"),
			os.Getenv("MYSQL_PORT"),
			os.Getenv("MYSQL_DBNAME"),
		)

		dialector = mysql.Open(mysqlCredentials)
	} else {
		path := os.Getenv("DB_PATH")

		if path == "" {
			path = "euromove.db"
		}

		dialector = sqlite.Open(path)
	}

	DBConn, err = gorm.Open(dialector, &gorm.Config{
		Logger: sentrylog.New(sentrylog.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger2.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})

	if err != nil {
		panic("failed to connect database")
	}
}

// Dialect returns which database flavour we're connected to, for the few
// places (schema diagnostics) that need to care.
func Dialect() string {
	if os.Getenv("DB_DIALECT") == "mysql" {
		return "mysql"
	}

	return "sqlite"
}
