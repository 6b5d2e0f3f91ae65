// Command tablecopy copies a database table to a formatted spreadsheet.
// Column headings, formats, widths and special behaviors are driven by the
// table's column metadata, so one invocation handles any table:
//
//	tablecopy [flags] TABLE OUTPUT.xlsx [header text ...]
//	tablecopy -job job.yaml
//	tablecopy -serve
//
// TABLE may be qualified as SCHEMA.TABLE or SCHEMA/TABLE. Up to 38 header
// strings are written in bold above the column headings, one row each.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/locvowork/tablecopy/internal/bootstrap"
	"github.com/locvowork/tablecopy/internal/config"
	"github.com/locvowork/tablecopy/internal/database"
	"github.com/locvowork/tablecopy/internal/logger"
	"github.com/locvowork/tablecopy/internal/metadata"
	"github.com/locvowork/tablecopy/internal/service"
)

var (
	serve     = flag.Bool("serve", false, "run the HTTP export service instead of a one-shot copy")
	jobFile   = flag.String("job", "", "YAML job file describing the copy")
	sheetName = flag.String("sheet", "", "sheet name, defaults to the table name")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	if *serve {
		app := bootstrap.NewApp()
		if err := app.Initialize(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize application: %v\n", err)
			os.Exit(1)
		}
		if err := app.Run(); err != nil {
			logger.ErrorLog(ctx, fmt.Sprintf("application failed: %v", err))
			os.Exit(1)
		}
		return
	}

	if err := config.LoadEnvConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load env config: %v\n", err)
		os.Exit(2)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	var job service.Job
	if *jobFile != "" {
		j, err := service.LoadJobFile(*jobFile)
		if err != nil {
			logger.ErrorLog(ctx, err.Error())
			os.Exit(2)
		}
		job = j
	} else {
		args := flag.Args()
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Program needs at least 2 parameters; received %d.\n", len(args))
			flag.Usage()
			os.Exit(2)
		}
		job = service.Job{
			Table:   args[0],
			Output:  args[1],
			Sheet:   *sheetName,
			Headers: args[2:],
		}
	}
	logger.InfoLog(ctx, "Parameters checked.")

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:            config.DefaultEnvConfig.DB_HOST,
		Port:            config.DefaultEnvConfig.DB_PORT,
		User:            config.DefaultEnvConfig.DB_USER,
		Password:        config.DefaultEnvConfig.DB_PASSWORD,
		DBName:          config.DefaultEnvConfig.DB_NAME,
		SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
		MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
	})
	if err != nil {
		logger.ErrorLog(ctx, err.Error())
		os.Exit(1)
	}
	defer db.Close()

	svc := service.NewExportService(metadata.NewProvider(db))
	if err := svc.ExportToFile(ctx, job); err != nil {
		logger.ErrorLog(ctx, fmt.Sprintf("copy of %s failed: %v", job.Table, err))
		os.Exit(1)
	}
}
