// Package areas 提供卡拉奇配送区域（区域 -> 街区）的静态目录
package areas

import "strings"

// Area 区域及其下属街区
type Area struct {
	Name   string   `json:"name"`
	Blocks []string `json:"blocks"`
}

var areaIndex = buildIndex(karachiAreas)

func buildIndex(list []Area) map[string]int {
	index := make(map[string]int, len(list))
	for i, area := range list {
		if _, exists := index[area.Name]; !exists {
			index[area.Name] = i
		}
	}
	return index
}

// List 按目录顺序返回全部区域（返回副本）
func List() []Area {
	result := make([]Area, 0, len(karachiAreas))
	for _, area := range karachiAreas {
		result = append(result, Area{
			Name:   area.Name,
			Blocks: append([]string(nil), area.Blocks...),
		})
	}
	return result
}

// Names 返回全部区域名称
func Names() []string {
	names := make([]string, 0, len(karachiAreas))
	for _, area := range karachiAreas {
		names = append(names, area.Name)
	}
	return names
}

// BlocksFor 返回区域下的街区，未知区域返回空列表
func BlocksFor(areaName string) []string {
	i, ok := areaIndex[strings.TrimSpace(areaName)]
	if !ok {
		return []string{}
	}
	return append([]string(nil), karachiAreas[i].Blocks...)
}

// HasArea 区域是否在目录中
func HasArea(areaName string) bool {
	_, ok := areaIndex[strings.TrimSpace(areaName)]
	return ok
}

// HasBlock 街区是否属于指定区域
func HasBlock(areaName, block string) bool {
	i, ok := areaIndex[strings.TrimSpace(areaName)]
	if !ok {
		return false
	}
	block = strings.TrimSpace(block)
	for _, candidate := range karachiAreas[i].Blocks {
		if candidate == block {
			return true
		}
	}
	return false
}
