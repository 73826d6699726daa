// Package member 파트 멤버 디렉터리.
// 이메일 → {이름, 우선순위} 조회를 주입 가능한 읽기 전용 서비스로 제공한다.
package member

import (
	"strings"

	"github.com/uhjee/watchtek-daily-report-web/config"
)

// UnknownPriority 디렉터리에 없는 인원의 정렬 우선순위
const UnknownPriority = 999

// UnassignedName 담당자가 비어 있는 항목의 표시 이름
const UnassignedName = "미지정"

// Info 멤버 정보
type Info struct {
	Name     string
	Priority int
}

// Directory 멤버 조회 인터페이스
type Directory interface {
	// Resolve 이메일로 멤버를 조회한다. 미등록 이메일은 이메일 로컬 파트를
	// 이름으로 하는 파생 멤버(우선순위 UnknownPriority)와 false 를 반환한다.
	Resolve(email string) (Info, bool)
	// PriorityOf 표시 이름 기준 우선순위를 반환한다 (미등록 이름은 UnknownPriority)
	PriorityOf(name string) int
}

// StaticDirectory 설정 기반 정적 멤버 디렉터리
type StaticDirectory struct {
	byEmail map[string]Info
	byName  map[string]int
}

// NewStaticDirectory 설정의 멤버 목록으로 디렉터리를 생성한다
func NewStaticDirectory(members []config.MemberConfig) *StaticDirectory {
	d := &StaticDirectory{
		byEmail: make(map[string]Info, len(members)),
		byName:  make(map[string]int, len(members)),
	}
	for _, m := range members {
		d.byEmail[m.Email] = Info{Name: m.Name, Priority: m.Priority}
		d.byName[m.Name] = m.Priority
	}
	return d
}

func (d *StaticDirectory) Resolve(email string) (Info, bool) {
	if info, ok := d.byEmail[email]; ok {
		return info, true
	}
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	return Info{Name: name, Priority: UnknownPriority}, false
}

func (d *StaticDirectory) PriorityOf(name string) int {
	if p, ok := d.byName[name]; ok {
		return p
	}
	return UnknownPriority
}
