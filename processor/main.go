package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"warehouse-app/config"
	"warehouse-app/idgen"
	"warehouse-app/migration"
	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/services"
)

// The processor ingests supply documents dropped as CSV files into the inbox
// directory. Expected layout, one item per row after the header:
//
//	number,date,resource,unit,quantity
//
// Resources and units are matched by name and created when missing. Every
// processed file is recorded in file_logs so it is never imported twice.
func main() {
	config.LoadConfig()

	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	idgen.Init()

	logger.Info("supply processor started", zap.String("inbox", config.SupplyInboxDir))
	processInbox(db, logger)
	logger.Info("all supply files processed")
}

func processInbox(db *gorm.DB, logger *zap.Logger) {
	pattern := filepath.Join(config.SupplyInboxDir, "SUPPLY_*.csv")
	files, err := filepath.Glob(pattern)
	if err != nil {
		logger.Fatal("failed to read inbox directory", zap.Error(err))
	}

	supplies := services.NewSupplyService(db, logger, services.NewBalanceService(db, logger))

	for _, file := range files {
		if err := processFile(db, logger, supplies, file); err != nil {
			logger.Error("failed to process supply file",
				zap.String("file", file), zap.Error(err))
		}
	}
}

func processFile(db *gorm.DB, logger *zap.Logger, supplies *services.SupplyService, filename string) error {
	name := filepath.Base(filename)

	var existing models.FileLog
	if err := db.Where("filename = ?", name).First(&existing).Error; err == nil {
		logger.Warn("file already processed, skipping", zap.String("file", name))
		return nil
	}

	info, err := os.Stat(filename)
	if err != nil {
		return err
	}

	doc, err := parseSupplyCSV(db, filename)
	if err != nil {
		return err
	}

	if err := supplies.Create(doc); err != nil {
		return err
	}

	fileLog := models.FileLog{
		BaseModel:    models.BaseModel{ID: idgen.GenerateID()},
		Filename:     name,
		DateModified: info.ModTime(),
	}
	if err := db.Create(&fileLog).Error; err != nil {
		return err
	}

	if err := moveToProcessed(filename); err != nil {
		return err
	}

	logger.Info("supply file processed",
		zap.String("file", name), zap.String("number", doc.Number))

	if err := sendEmailNotification(config.NotifyEmails, doc.Number); err != nil {
		logger.Warn("failed to send notification email", zap.Error(err))
	}

	return nil
}

func parseSupplyCSV(db *gorm.DB, filename string) (*models.SupplyDocument, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file %s has no data rows", filepath.Base(filename))
	}

	doc := &models.SupplyDocument{}

	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("row %d: expected 5 columns, got %d", i+1, len(record))
		}

		if doc.Number == "" {
			doc.Number = strings.TrimSpace(record[0])
			doc.Date, err = time.Parse("2006-01-02", strings.TrimSpace(record[1]))
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid date: %w", i+1, err)
			}
		}

		quantity, err := decimal.NewFromString(strings.TrimSpace(record[4]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity: %w", i+1, err)
		}

		resource, err := findOrCreateResource(db, strings.TrimSpace(record[2]))
		if err != nil {
			return nil, err
		}
		unit, err := findOrCreateUnit(db, strings.TrimSpace(record[3]))
		if err != nil {
			return nil, err
		}

		doc.Items = append(doc.Items, models.SupplyItem{
			ResourceID: resource.ID,
			UnitID:     unit.ID,
			Quantity:   quantity,
		})
	}

	return doc, nil
}

func findOrCreateResource(db *gorm.DB, name string) (*models.Resource, error) {
	var resource models.Resource
	err := db.Where("name = ?", name).First(&resource).Error
	if err == nil {
		return &resource, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	resource = models.Resource{
		BaseModel: models.BaseModel{ID: idgen.GenerateID()},
		Name:      name,
	}
	if err := repositories.NewResourceRepository(db).Add(&resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

func findOrCreateUnit(db *gorm.DB, name string) (*models.UnitOfMeasure, error) {
	var unit models.UnitOfMeasure
	err := db.Where("name = ?", name).First(&unit).Error
	if err == nil {
		return &unit, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	unit = models.UnitOfMeasure{
		BaseModel: models.BaseModel{ID: idgen.GenerateID()},
		Name:      name,
	}
	if err := repositories.NewUomRepository(db).Add(&unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

func moveToProcessed(filename string) error {
	if _, err := os.Stat(config.SupplyProcessedDir); os.IsNotExist(err) {
		if err := os.MkdirAll(config.SupplyProcessedDir, os.ModePerm); err != nil {
			return err
		}
	}
	return os.Rename(filename, filepath.Join(config.SupplyProcessedDir, filepath.Base(filename)))
}

func sendEmailNotification(toEmails []string, supplyNumber string) error {
	if config.SMTPHost == "" || len(toEmails) == 0 {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>New supply document ingested</h3>
				<p>Number: <strong>%s</strong></p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, supplyNumber)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", "New Supply "+supplyNumber)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
