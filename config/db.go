package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"hotel-management/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dc := newDriverConfig()
	dc.User = u.User.Username()
	dc.Passwd, _ = u.User.Password()
	dc.Addr = u.Hostname() + ":" + port
	dc.DBName = dbName
	for key, values := range u.Query() {
		if len(values) > 0 {
			dc.Params[key] = values[0]
		}
	}
	return dc.FormatDSN(), nil
}

func newDriverConfig() *mysqldriver.Config {
	dc := mysqldriver.NewConfig()
	dc.Net = "tcp"
	dc.ParseTime = true
	dc.Loc = time.UTC
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc
}

// DSN resolves the MySQL DSN: MYSQL_URL / DATABASE_URL first (mysql:// URL or raw DSN), then DB_* parts.
func (c *Config) DSN() (string, error) {
	raw := strings.TrimSpace(c.MySQLURL)
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	dc := newDriverConfig()
	dc.User = c.DBUser
	dc.Passwd = c.DBPass
	dc.Addr = c.DBHost + ":" + c.DBPort
	dc.DBName = c.DBName
	return dc.FormatDSN(), nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ConnectDatabase opens the pooled MySQL handle, migrates the schema and seeds lookups.
// SQL logs go through log.
func ConnectDatabase(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: newGormLogger(log, gormLogLevel(cfg.DBLogLevel), time.Second),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBPoolSize)
	sqlDB.SetMaxIdleConns(cfg.DBPoolSize)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := Seed(db, cfg.SeedAdminPassword); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return db, nil
}

// Migrate creates tables in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.StatusCode{},
		&models.RoomType{},
		&models.Room{},
		&models.User{},
		&models.UserProfile{},
		&models.Guest{},
		&models.Reservation{},
		&models.StayRecord{},
		&models.StayRecordHistory{},
		&models.Service{},
		&models.ServiceListItem{},
		&models.Discount{},
		&models.Ad{},
		&models.AboutUs{},
	)
}

// Seed inserts lookup rows and a default admin when the tables are empty.
func Seed(db *gorm.DB, adminPassword string) error {
	statuses := []models.StatusCode{
		{ID: 1, Name: models.StatusAvailable, Color: "green"},
		{ID: 2, Name: models.StatusOccupied, Color: "red"},
		{ID: 3, Name: models.StatusMaintenance, Color: "orange"},
	}
	for i := range statuses {
		if err := db.Where(models.StatusCode{Name: statuses[i].Name}).FirstOrCreate(&statuses[i]).Error; err != nil {
			return fmt.Errorf("status code %s: %w", statuses[i].Name, err)
		}
	}

	var rtCount int64
	if err := db.Model(&models.RoomType{}).Count(&rtCount).Error; err != nil {
		return err
	}
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{Name: "Standard", Description: "Standard Room", MaxOccupancy: 2},
			{Name: "Deluxe", Description: "Deluxe Room", MaxOccupancy: 3},
			{Name: "Suite", Description: "Suite", MaxOccupancy: 4},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			return fmt.Errorf("room types: %w", err)
		}
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 && adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash default admin password: %w", err)
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			admin := models.User{ID: "admin", Username: "admin", Password: string(hash), Role: models.RoleAdmin}
			if err := tx.Omit("Profile").Create(&admin).Error; err != nil {
				return err
			}
			return tx.Create(models.NewDefaultProfile(admin.ID)).Error
		})
		if err != nil {
			return fmt.Errorf("default admin: %w", err)
		}
	}

	var aboutCount int64
	if err := db.Model(&models.AboutUs{}).Count(&aboutCount).Error; err != nil {
		return err
	}
	if aboutCount == 0 {
		if err := db.Create(&models.AboutUs{ID: 1, Title: "About Us"}).Error; err != nil {
			return fmt.Errorf("about us: %w", err)
		}
	}
	return nil
}
