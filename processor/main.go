package main

import (
	"fmt"
	"time"

	"dashboard-app/config"
	"dashboard-app/database"
	"dashboard-app/repositories"
	"dashboard-app/services"
	"dashboard-app/utils/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Monthly report processor: builds last month's daily series and status
// distribution into a workbook and mails it. Runs once; scheduling is
// left to cron.
func main() {
	config.LoadConfig()

	if err := logger.Init(config.APP_ENV); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := database.Open()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	lastMonth := time.Now().AddDate(0, -1, 0)
	year, month := lastMonth.Year(), int(lastMonth.Month())
	monthLabel := lastMonth.Format("2006-01")

	repo := repositories.NewLogisticsRepository(db)

	inboundRaw, err := repo.GetInboundTransactionsByDate()
	if err != nil {
		logger.Fatal("failed to load inbound transactions", zap.Error(err))
	}
	outboundRaw, err := repo.GetOutboundTransactionsByDate()
	if err != nil {
		logger.Fatal("failed to load outbound transactions", zap.Error(err))
	}
	inboundStatusRaw, err := repo.GetInboundStatusTotals()
	if err != nil {
		logger.Fatal("failed to load inbound status totals", zap.Error(err))
	}
	outboundStatusRaw, err := repo.GetOutboundStatusTotals()
	if err != nil {
		logger.Fatal("failed to load outbound status totals", zap.Error(err))
	}

	inboundDaily, err := services.BucketByDay(inboundRaw, year, month)
	if err != nil {
		logger.Fatal("failed to bucket inbound series", zap.Error(err))
	}
	outboundDaily, err := services.BucketByDay(outboundRaw, year, month)
	if err != nil {
		logger.Fatal("failed to bucket outbound series", zap.Error(err))
	}
	inboundStatus, err := services.ComputeDistribution(inboundStatusRaw)
	if err != nil {
		logger.Fatal("failed to compute inbound distribution", zap.Error(err))
	}
	outboundStatus, err := services.ComputeDistribution(outboundStatusRaw)
	if err != nil {
		logger.Fatal("failed to compute outbound distribution", zap.Error(err))
	}

	path := fmt.Sprintf("logistics_%s.xlsx", monthLabel)
	if err := writeReport(path, monthLabel, inboundDaily, outboundDaily, inboundStatus, outboundStatus); err != nil {
		logger.Fatal("failed to write report", zap.Error(err))
	}
	logger.Info("report written", zap.String("path", path))

	if config.SMTPHost == "" || config.ReportMailTo == "" {
		logger.Warn("SMTP not configured, skipping mail")
		return
	}

	if err := mailReport(path, monthLabel); err != nil {
		logger.Fatal("failed to mail report", zap.Error(err))
	}
	logger.Info("report mailed", zap.String("to", config.ReportMailTo))
}

func writeReport(path, monthLabel string, inboundDaily, outboundDaily []services.DailyBucket, inboundStatus, outboundStatus []services.StatusShare) error {
	f := excelize.NewFile()
	defer f.Close()

	daily := f.GetSheetName(0)
	f.SetSheetName(daily, "Daily")
	if err := f.SetSheetRow("Daily", "A1", &[]interface{}{"Day", "Inbound Qty", "Outbound Qty"}); err != nil {
		return err
	}
	for i, bucket := range inboundDaily {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{bucket.Date, bucket.Count, 0}
		if i < len(outboundDaily) {
			row[2] = outboundDaily[i].Count
		}
		if err := f.SetSheetRow("Daily", cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Status"); err != nil {
		return err
	}
	if err := f.SetSheetRow("Status", "A1", &[]interface{}{"Direction", "Status", "Share %"}); err != nil {
		return err
	}
	line := 2
	for _, share := range inboundStatus {
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Status", cell, &[]interface{}{"Inbound", share.Name, share.Value}); err != nil {
			return err
		}
		line++
	}
	for _, share := range outboundStatus {
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Status", cell, &[]interface{}{"Outbound", share.Name, share.Value}); err != nil {
			return err
		}
		line++
	}

	return f.SaveAs(path)
}

func mailReport(path, monthLabel string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.SMTPUser)
	m.SetHeader("To", config.ReportMailTo)
	m.SetHeader("Subject", "Warehouse logistics report "+monthLabel)
	m.SetBody("text/plain", "Attached is the logistics activity report for "+monthLabel+".")
	m.Attach(path)

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return d.DialAndSend(m)
}
