package notion

// ── 데이터베이스 조회 필터 ──
// Notion database query 필터 중 보고서 조회에 필요한 AND 조합 부분집합만 모델링한다.

// Filter 필드 조건의 AND 조합
type Filter struct {
	And []Condition `json:"and,omitempty"`
}

// Condition 단일 속성 조건
type Condition struct {
	Property string           `json:"property"`
	Date     *DateCondition   `json:"date,omitempty"`
	People   *PeopleCondition `json:"people,omitempty"`
}

// DateCondition 날짜 속성 조건
type DateCondition struct {
	OnOrAfter  string    `json:"on_or_after,omitempty"`
	OnOrBefore string    `json:"on_or_before,omitempty"`
	ThisWeek   *struct{} `json:"this_week,omitempty"`
}

// PeopleCondition 담당자 속성 조건
type PeopleCondition struct {
	IsNotEmpty bool `json:"is_not_empty,omitempty"`
}

// Sort 정렬 조건 (Property 또는 Timestamp 중 하나를 사용)
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

// ── 페이지 속성 ──

// RichText Notion 리치 텍스트 요소
type RichText struct {
	Type        string       `json:"type,omitempty"`
	Text        *TextContent `json:"text,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text,omitempty"`
}

// TextContent 텍스트 본문과 선택적 하이퍼링크
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link 하이퍼링크
type Link struct {
	URL string `json:"url"`
}

// Annotations 텍스트 서식
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color,omitempty"`
}

// TitleProp 제목 속성
type TitleProp struct {
	Title []RichText `json:"title"`
}

// SelectProp 선택 속성
type SelectProp struct {
	Select *SelectOption `json:"select"`
}

// SelectOption 선택 항목
type SelectOption struct {
	Name string `json:"name"`
}

// Person 담당자. 이메일은 person.email 또는 최상위 email 로 내려온다.
type Person struct {
	Email  string       `json:"email,omitempty"`
	Person *PersonEmail `json:"person,omitempty"`
}

// PersonEmail 담당자 이메일
type PersonEmail struct {
	Email string `json:"email"`
}

// ResolvedEmail 두 위치 중 존재하는 이메일을 반환한다
func (p Person) ResolvedEmail() string {
	if p.Person != nil && p.Person.Email != "" {
		return p.Person.Email
	}
	return p.Email
}

// PeopleProp 담당자 목록 속성
type PeopleProp struct {
	People []Person `json:"people"`
}

// NumberProp 숫자 속성 (null 허용)
type NumberProp struct {
	Number *float64 `json:"number"`
}

// Value 숫자 값과 존재 여부를 반환한다
func (p *NumberProp) Value() (float64, bool) {
	if p == nil || p.Number == nil {
		return 0, false
	}
	return *p.Number, true
}

// DateProp 날짜 속성
type DateProp struct {
	Date *DateValue `json:"date"`
}

// DateValue 날짜 범위 (End 빈 문자열 = 단일 일자)
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// LinkProp PMS 링크 속성. 수식(formula) 결과 또는 일반 URL 필드로 내려온다.
type LinkProp struct {
	Formula *FormulaValue `json:"formula,omitempty"`
	URL     string        `json:"url,omitempty"`
}

// FormulaValue 수식 결과 (문자열 수식만 사용)
type FormulaValue struct {
	String string `json:"string"`
}

// PageProperties 업무 데이터베이스 페이지 속성
type PageProperties struct {
	Name      *TitleProp  `json:"Name,omitempty"`
	Customer  *SelectProp `json:"Customer,omitempty"`
	Group     *SelectProp `json:"Group,omitempty"`
	SubGroup  *SelectProp `json:"SubGroup,omitempty"`
	Person    *PeopleProp `json:"Person,omitempty"`
	Progress  *NumberProp `json:"Progress,omitempty"`
	Date      *DateProp   `json:"Date,omitempty"`
	ManHour   *NumberProp `json:"ManHour,omitempty"`
	PmsNumber *NumberProp `json:"PmsNumber,omitempty"`
	PmsLink   *LinkProp   `json:"PmsLink,omitempty"`
}

// Page 업무 데이터베이스의 페이지 한 건
type Page struct {
	ID         string         `json:"id"`
	URL        string         `json:"url,omitempty"`
	Properties PageProperties `json:"properties"`
}

// TitleText 제목 속성의 첫 텍스트를 반환한다
func (p Page) TitleText() string {
	if p.Properties.Name == nil || len(p.Properties.Name.Title) == 0 {
		return ""
	}
	return p.Properties.Name.Title[0].PlainText
}

// People 담당자 목록을 반환한다
func (p Page) People() []Person {
	if p.Properties.Person == nil {
		return nil
	}
	return p.Properties.Person.People
}

// WithSinglePerson 담당자를 한 명으로 교체한 새 페이지 값을 반환한다.
// 나머지 속성은 읽기 전용으로 공유한다.
func (p Page) WithSinglePerson(person Person) Page {
	clone := p
	clone.Properties.Person = &PeopleProp{People: []Person{person}}
	return clone
}

// SelectName 선택 속성의 이름을 반환한다
func (s *SelectProp) SelectName() string {
	if s == nil || s.Select == nil {
		return ""
	}
	return s.Select.Name
}

// DateRange 날짜 속성의 시작/종료와 존재 여부를 반환한다
func (p Page) DateRange() (start, end string, ok bool) {
	d := p.Properties.Date
	if d == nil || d.Date == nil || d.Date.Start == "" {
		return "", "", false
	}
	return d.Date.Start, d.Date.End, true
}

// PmsLinkURL PMS 링크를 반환한다. 수식 결과를 우선하고 없으면 URL 필드를 사용한다.
func (p Page) PmsLinkURL() string {
	l := p.Properties.PmsLink
	if l == nil {
		return ""
	}
	if l.Formula != nil && l.Formula.String != "" {
		return l.Formula.String
	}
	return l.URL
}
