package gormdb

import (
	"fmt"

	"user_center/be/biz/config"
	"user_center/be/biz/model/storage"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func Init(conf *config.ServiceConf) error {
	conn, err := Open(conf)
	if err != nil {
		return err
	}
	db = conn
	return nil
}

func GetDbConn() *gorm.DB {
	return db
}

// Open connects to the relational store selected by conf.Storage.Driver and
// migrates the user table.
func Open(conf *config.ServiceConf) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Storage.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(mysqlDSN(&conf.MySQL))
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.SQLite.Path)
	default:
		return nil, errors.Errorf("driver %q is not a gorm driver", conf.Storage.Driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open gorm")
	}

	if conf.Storage.Driver == config.DriverSQLite {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, errors.Wrap(err, "sqlite pool")
		}
		// one connection keeps :memory: databases shared
		sqlDB.SetMaxOpenConns(1)
	}

	if err := conn.AutoMigrate(&storage.UserRecord{}); err != nil {
		return nil, errors.Wrap(err, "migrate users")
	}
	return conn, nil
}

func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func mysqlDSN(conf *config.MySQLConf) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)
}
