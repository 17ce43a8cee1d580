package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Path(t *testing.T) {
	type test struct {
		key  Key
		path string
	}

	tests := map[string]test{
		"full": {
			key:  Key{Dataset: "weather", Run: "1234", Label: "knn_test"},
			path: "weather_1234_knn_test",
		},
		"empty-run": {
			key:  Key{Dataset: "weather", Label: "bayes_validation"},
			path: "weather__bayes_validation",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.path, tt.key.Path())
		})
	}
}
