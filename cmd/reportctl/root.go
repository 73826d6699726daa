package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uhjee/watchtek-daily-report-web/config"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/internal/service"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

var (
	configPath string
	dateFlag   string
	publish    bool
	yearFlag   int
	monthFlag  int
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "파트 업무 보고서 생성/발행/내보내기 CLI",
	Long:  `reportctl 은 HTTP 서버 없이 일간/주간/월간 업무 보고서를 생성하고 Notion 발행, Excel 내보내기를 수행한다.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "기준 날짜의 보고서를 생성하여 출력한다 (--publish 시 Notion 페이지 발행)",
	RunE:  runGenerate,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "월별 업무 목록을 Excel 파일로 내보낸다",
	RunE:  runExport,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "설정 파일 경로")

	generateCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "기준 날짜 (YYYY-MM-DD, 생략 시 오늘)")
	generateCmd.Flags().BoolVar(&publish, "publish", false, "생성한 보고서를 Notion 페이지로 발행")

	exportCmd.Flags().IntVar(&yearFlag, "year", time.Now().Year(), "조회 연도")
	exportCmd.Flags().IntVar(&monthFlag, "month", int(time.Now().Month()), "조회 월 (1-12)")
	exportCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "출력 디렉터리")
}

// buildServices 설정을 로드하고 서비스 집합을 구성한다
func buildServices() (*config.Config, *service.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	// CLI 출력과 섞이지 않도록 구조화 로그는 끈다
	logger := zap.NewNop()

	client, err := notion.NewClient(cfg.Notion, logger)
	if err != nil {
		return nil, nil, err
	}

	cal := dateutil.NewCalendar(dateutil.KoreanHolidays{})
	return cfg, service.NewService(cfg, client, cal, logger), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, svc, err := buildServices()
	if err != nil {
		return err
	}

	types, err := svc.Report.DetermineReportTypes(dateFlag)
	if err != nil {
		return err
	}
	if types.IsHoliday {
		fmt.Println("휴일에는 보고서를 생성하지 않습니다.")
		return nil
	}

	ctx := context.Background()
	formatter := service.NewTextFormatter(cfg.Report.PartName)

	bar := newSpinner("업무 데이터 조회 중")

	daily, err := svc.Report.GenerateDaily(ctx, dateFlag)
	if err != nil {
		finishBar(bar)
		return err
	}
	finishBar(bar)

	fmt.Println(formatter.DailyReport(daily.Date, daily.Tasks.InProgress, daily.Tasks.Planned))

	if types.ShouldGenerateWeekly {
		weekly, err := svc.Report.GenerateWeekly(ctx, dateFlag)
		if err != nil {
			return err
		}
		fmt.Println(formatter.WeeklyReport(weekly.Date, weekly.Tasks.InProgress))

		if publish {
			if err := publishReport(ctx, "주간", func() error {
				_, err := svc.Publish.PublishWeekly(ctx, weekly)
				return err
			}); err != nil {
				return err
			}
		}
	}

	if types.ShouldGenerateMonthly {
		monthly, err := svc.Report.GenerateMonthly(ctx, dateFlag)
		if err != nil {
			return err
		}
		fmt.Println(formatter.MonthlyReport(monthly.Date, monthly.Tasks.InProgress, monthly.Tasks.Completed))

		if publish {
			if err := publishReport(ctx, "월간", func() error {
				_, err := svc.Publish.PublishMonthly(ctx, monthly)
				return err
			}); err != nil {
				return err
			}
		}
	}

	if publish {
		if err := publishReport(ctx, "일간", func() error {
			_, err := svc.Publish.PublishDaily(ctx, daily)
			return err
		}); err != nil {
			return err
		}
	}

	return nil
}

func publishReport(_ context.Context, label string, fn func() error) error {
	bar := newSpinner(label + " 보고서 발행 중")
	defer finishBar(bar)

	if err := fn(); err != nil {
		return fmt.Errorf("%s 보고서 발행 실패: %w", label, err)
	}
	fmt.Printf("%s 보고서 Notion 페이지 발행 완료\n", label)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	_, svc, err := buildServices()
	if err != nil {
		return err
	}

	bar := newSpinner("월별 업무 목록 조회 중")
	buf, filename, err := svc.Export.ExportMonthlyTasks(context.Background(), yearFlag, monthFlag)
	finishBar(bar)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	fmt.Printf("내보내기 완료: %s\n", path)
	return nil
}

func newSpinner(description string) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	_ = bar.RenderBlank()
	return bar
}

func finishBar(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
