package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"scenekit/logx"
)

// savePath is relative to the working directory, like the engine config.
const savePath = "saves/cubeclicker.json"

type savedCube struct {
	Position [3]float32 `json:"position"`
	Clicks   int        `json:"clicks"`
}

type saveData struct {
	TotalClicks int         `json:"total_clicks"`
	Cubes       []savedCube `json:"cubes"`
}

// loadSave reads the previous session. Any failure logs and degrades to an
// empty save; it never blocks startup.
func loadSave() saveData { return loadSaveFrom(savePath) }

func loadSaveFrom(path string) saveData {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logx.Warnf("reading %s: %v, starting fresh", path, err)
		}
		return saveData{}
	}
	var s saveData
	if err := json.Unmarshal(data, &s); err != nil {
		logx.Warnf("parsing %s: %v, starting fresh", path, err)
		return saveData{}
	}
	return s
}

func writeSave(s saveData) error { return writeSaveTo(savePath, s) }

func writeSaveTo(path string, s saveData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
