package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 애플리케이션 전역 설정 구조체
type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	Notion  NotionConfig   `mapstructure:"notion"`
	Report  ReportConfig   `mapstructure:"report"`
	Members []MemberConfig `mapstructure:"members"`
	Log     LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig 교차 출처 허용 설정
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// NotionConfig Notion API 연동 설정
type NotionConfig struct {
	APIKey            string  `mapstructure:"api_key"`
	DatabaseID        string  `mapstructure:"database_id"`
	ReportDatabaseID  string  `mapstructure:"report_database_id"`
	BaseURL           string  `mapstructure:"base_url"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// ReportConfig 보고서 생성 규칙 설정
// 그룹 우선순위 티어와 서브그룹 정렬 순서는 파트 운영 규칙이라 설정으로 분리한다
type ReportConfig struct {
	PartName             string   `mapstructure:"part_name"`
	HighPriorityGroups   []string `mapstructure:"high_priority_groups"`
	SecondPriorityGroups []string `mapstructure:"second_priority_groups"`
	LowPriorityGroups    []string `mapstructure:"low_priority_groups"`
	LowestPriorityGroups []string `mapstructure:"lowest_priority_groups"`
	SubGroupOrder        []string `mapstructure:"sub_group_order"`
}

// MemberConfig 파트 멤버 정보 (이메일 → 이름/우선순위)
type MemberConfig struct {
	Email    string `mapstructure:"email"`
	Name     string `mapstructure:"name"`
	Priority int    `mapstructure:"priority"`
}

// LogConfig 로그 설정
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 설정 파일과 환경 변수에서 설정을 로드한다
// 우선순위: 환경 변수 > 설정 파일 > 기본값
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 기본값 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("notion.base_url", "https://api.notion.com")
	v.SetDefault("notion.requests_per_second", 3)

	v.SetDefault("report.part_name", "큐브 파트")
	v.SetDefault("report.high_priority_groups", []string{"kt cloud", "kt cloud - 상주"})
	v.SetDefault("report.second_priority_groups", []string{"DCIM 구현", "DCIM프로젝트"})
	v.SetDefault("report.low_priority_groups", []string{"자체결함", "기술지원팀 요청"})
	v.SetDefault("report.lowest_priority_groups", []string{"회의", "기타"})
	v.SetDefault("report.sub_group_order", []string{
		"분석", "설계/분석", "구현", "결함 처리", "개발 관리", "회의", "일반", "기타",
	})

	v.SetDefault("members", []map[string]interface{}{
		{"email": "1033057@hansung.ac.kr", "name": "허지행", "priority": 1},
		{"email": "janga782@watchtek.co.kr", "name": "장민호", "priority": 2},
		{"email": "ldyydl@inu.ac.kr", "name": "이동엽", "priority": 3},
		{"email": "hwan3921@naver.com", "name": "장성환", "priority": 4},
		{"email": "mypark5@watchtek.co.kr", "name": "박민영", "priority": 6},
	})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 설정 파일 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 환경 변수 ──
	v.SetEnvPrefix("WATCHTEK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
		}
		// 설정 파일이 없으면 기본값과 환경 변수만 사용
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 필수 설정 항목을 검증한다
// Notion 연동 정보가 없으면 서비스를 구성할 수 없으므로 기동 단계에서 실패시킨다
func (c *Config) Validate() error {
	if c.Notion.APIKey == "" {
		return fmt.Errorf("설정 검증 실패: notion.api_key 가 정의되지 않았습니다")
	}
	if c.Notion.DatabaseID == "" {
		return fmt.Errorf("설정 검증 실패: notion.database_id 가 정의되지 않았습니다")
	}
	if c.Notion.ReportDatabaseID == "" {
		return fmt.Errorf("설정 검증 실패: notion.report_database_id 가 정의되지 않았습니다")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("설정 검증 실패: server.port 는 1-65535 범위여야 합니다")
	}
	if c.Notion.RequestsPerSecond <= 0 {
		return fmt.Errorf("설정 검증 실패: notion.requests_per_second 는 0보다 커야 합니다")
	}
	return nil
}
