package config

import (
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Token   string `toml:"token" mapstructure:"token"`
	Host    string `toml:"host" mapstructure:"host"`
	Port    string `toml:"port" mapstructure:"port"`
	TopK    int    `toml:"topk" mapstructure:"topk"`
	Libonnx string `toml:"libonnx" mapstructure:"libonnx"`

	ModelDir       string `toml:"model_dir" mapstructure:"model_dir"`
	ModelFileName  string `toml:"model_file_name" mapstructure:"model_file_name"`
	QuantFileName  string `toml:"quant_file_name" mapstructure:"quant_file_name"`
	LabelsFileName string `toml:"labels_file_name" mapstructure:"labels_file_name"`

	Mean [3]float32 `toml:"mean" mapstructure:"mean"`
	Std  [3]float32 `toml:"std" mapstructure:"std"`
}

var (
	cfg = Config{
		Token:          "",
		Host:           "0.0.0.0",
		Port:           "8000",
		TopK:           3,
		ModelDir:       "models",
		ModelFileName:  "cifar10.onnx",
		QuantFileName:  "cifar10_int8.onnx",
		LabelsFileName: "labels.txt",
		Mean:           [3]float32{0.4914, 0.4822, 0.4465},
		Std:            [3]float32{0.2470, 0.2435, 0.2616},
	}
	loadOnce sync.Once
)

func C() Config {
	loadOnce.Do(func() {
		if _, err := os.Stat("config.toml"); err == nil {
			data, err := os.ReadFile("config.toml")
			if err != nil {
				panic(err)
			}
			if err := toml.Unmarshal(data, &cfg); err != nil {
				panic(err)
			}
		}
	})
	return cfg
}
