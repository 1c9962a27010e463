package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Scenario 一个校验场景
type Scenario struct {
	Name   string `yaml:"name"`
	Steps  []Step `yaml:"steps"`
	Expect Expect `yaml:"expect"`
}

// Step 一步输入：滚动/滚轮/按键之一，然后推进 Frames 帧，整体重复 Repeat 次
type Step struct {
	ScrollTo *float64 `yaml:"scrollTo"`
	Wheel    float64  `yaml:"wheel"`
	Key      string   `yaml:"key"`
	Frames   int      `yaml:"frames"`
	Repeat   int      `yaml:"repeat"`
}

// Expect 场景结束时的期望（nil 表示不检查）
type Expect struct {
	MinProgress       *float64 `yaml:"minProgress"`
	HeroOpacity       *float64 `yaml:"heroOpacity"`
	CountersCompleted *bool    `yaml:"countersCompleted"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// keyByName 场景文件里可用的按键名
var keyByName = map[string]ebiten.Key{
	"up":       ebiten.KeyArrowUp,
	"down":     ebiten.KeyArrowDown,
	"pageUp":   ebiten.KeyPageUp,
	"pageDown": ebiten.KeyPageDown,
	"space":    ebiten.KeySpace,
	"home":     ebiten.KeyHome,
	"end":      ebiten.KeyEnd,
}

// parseScenarios 解析并校验场景文件
func parseScenarios(data []byte) ([]Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析场景文件失败: %w", err)
	}
	for i, sc := range file.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenarios[%d]: 缺少 name", i)
		}
		for j, st := range sc.Steps {
			if st.Key != "" {
				if _, ok := keyByName[st.Key]; !ok {
					return nil, fmt.Errorf("%s: steps[%d]: 未知按键 %q", sc.Name, j, st.Key)
				}
			}
			if st.Frames < 0 || st.Repeat < 0 {
				return nil, fmt.Errorf("%s: steps[%d]: frames/repeat 不能为负", sc.Name, j)
			}
		}
	}
	return file.Scenarios, nil
}

// loadScenarios 从文件加载场景，path 为空时使用内置场景
func loadScenarios(path string) ([]Scenario, error) {
	if path == "" {
		return parseScenarios(defaultScenarios)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取场景文件失败: %w", err)
	}
	return parseScenarios(data)
}
