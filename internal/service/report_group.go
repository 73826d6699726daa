package service

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/uhjee/watchtek-daily-report-web/config"
	"github.com/uhjee/watchtek-daily-report-web/internal/member"
	"github.com/uhjee/watchtek-daily-report-web/internal/model"
)

// grouper Group/SubGroup 그룹화 및 정렬기.
// 그룹 우선순위 티어와 서브그룹 순서는 설정에서 주입받고,
// 한글 정렬은 collate 기반 가나다순을 사용한다.
type grouper struct {
	cfg config.ReportConfig
	dir member.Directory
	col *collate.Collator
}

func newGrouper(cfg config.ReportConfig, dir member.Directory) *grouper {
	return &grouper{cfg: cfg, dir: dir, col: collate.New(language.Korean)}
}

// 그룹 우선순위 티어: 1(최우선) / 2 / 3(일반) / 4 / 5(최후순위)
// 티어 목록에 있는 그룹은 목록 내 정의 순서를, 일반 그룹(3)은 가나다순을 따른다.
func (g *grouper) groupTier(group string) (tier, index int) {
	tiers := []struct {
		tier   int
		groups []string
	}{
		{1, g.cfg.HighPriorityGroups},
		{2, g.cfg.SecondPriorityGroups},
		{4, g.cfg.LowPriorityGroups},
		{5, g.cfg.LowestPriorityGroups},
	}
	for _, t := range tiers {
		for i, name := range t.groups {
			if name == group {
				return t.tier, i
			}
		}
	}
	return 3, 0
}

func (g *grouper) compareGroups(a, b string) bool {
	tierA, idxA := g.groupTier(a)
	tierB, idxB := g.groupTier(b)
	if tierA != tierB {
		return tierA < tierB
	}
	if tierA != 3 {
		return idxA < idxB
	}
	return g.col.CompareString(a, b) < 0
}

// 서브그룹: 정의된 순서 목록 우선, 목록에 없으면 가나다순으로 뒤에 배치
func (g *grouper) compareSubGroups(a, b string) bool {
	idxA := indexOf(g.cfg.SubGroupOrder, a)
	idxB := indexOf(g.cfg.SubGroupOrder, b)
	switch {
	case idxA >= 0 && idxB >= 0:
		return idxA < idxB
	case idxA >= 0:
		return true
	case idxB >= 0:
		return false
	default:
		return g.col.CompareString(a, b) < 0
	}
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}

// Group 보고서 항목을 Group/SubGroup 단위로 묶고 정렬한다.
// 항목 정렬: 진행률 내림차순 → 멤버 우선순위 오름차순 → 이름 가나다순.
func (g *grouper) Group(items []model.ReportItem) []model.GroupedTaskList {
	type bucket struct {
		subGroups map[string][]model.ReportItem
		order     []string
	}

	buckets := make(map[string]*bucket)
	var groupNames []string

	for _, item := range items {
		group := item.Group
		if group == "" {
			group = "기타"
		}
		subGroup := item.SubGroup
		if subGroup == "" {
			subGroup = "일반"
		}

		b, ok := buckets[group]
		if !ok {
			b = &bucket{subGroups: make(map[string][]model.ReportItem)}
			buckets[group] = b
			groupNames = append(groupNames, group)
		}
		if _, ok := b.subGroups[subGroup]; !ok {
			b.order = append(b.order, subGroup)
		}
		b.subGroups[subGroup] = append(b.subGroups[subGroup], item)
	}

	sort.SliceStable(groupNames, func(i, j int) bool {
		return g.compareGroups(groupNames[i], groupNames[j])
	})

	var result []model.GroupedTaskList
	for _, group := range groupNames {
		b := buckets[group]
		subGroupNames := append([]string(nil), b.order...)
		sort.SliceStable(subGroupNames, func(i, j int) bool {
			return g.compareSubGroups(subGroupNames[i], subGroupNames[j])
		})

		for _, subGroup := range subGroupNames {
			entries := b.subGroups[subGroup]
			sort.SliceStable(entries, func(i, j int) bool {
				a, c := entries[i], entries[j]
				if a.ProgressRate != c.ProgressRate {
					return a.ProgressRate > c.ProgressRate
				}
				pa, pc := g.dir.PriorityOf(a.Person), g.dir.PriorityOf(c.Person)
				if pa != pc {
					return pa < pc
				}
				return g.col.CompareString(a.Person, c.Person) < 0
			})

			displayItems := make([]model.DisplayItem, 0, len(entries))
			for _, entry := range entries {
				progress := 0
				if entry.ProgressRate > 0 {
					progress = int(math.Round(entry.ProgressRate))
				}
				displayItems = append(displayItems, model.DisplayItem{
					Title:    entry.Title,
					Person:   entry.Person,
					Progress: progress,
					ManHour:  entry.ManHour,
					PmsLink:  entry.PmsLink,
				})
			}

			result = append(result, model.GroupedTaskList{
				Group:    group,
				SubGroup: subGroup,
				Items:    displayItems,
			})
		}
	}

	return result
}

// groupSection 같은 Group 의 SubGroup 목록 묶음 (페이지/텍스트 출력용)
type groupSection struct {
	Group string
	Lists []model.GroupedTaskList
}

// collectByGroup 연속된 같은 Group 의 목록을 하나의 섹션으로 묶는다
func collectByGroup(tasks []model.GroupedTaskList) []groupSection {
	var sections []groupSection
	seen := make(map[string]int)

	for _, task := range tasks {
		if idx, ok := seen[task.Group]; ok {
			sections[idx].Lists = append(sections[idx].Lists, task)
			continue
		}
		seen[task.Group] = len(sections)
		sections = append(sections, groupSection{Group: task.Group, Lists: []model.GroupedTaskList{task}})
	}

	return sections
}
