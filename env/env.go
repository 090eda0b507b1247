package env

import (
	"strings"
	"sync"

	"github.com/auctionhaus/go-auctionhaus/service/logger"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validators = map[string][]string{}

var v = validator.New()

var validatorsMu = &sync.Mutex{}

// RegisterValidation associates validation tags with an env var. The tags are
// checked each time the var is read so a missing or malformed value surfaces
// in the logs at the point of use rather than at startup.
func RegisterValidation(name string, tags ...string) {
	validatorsMu.Lock()
	defer validatorsMu.Unlock()
	validators[name] = dedupe(append(validators[name], tags...))
}

func Get[T any](name string) T {
	validate(name)

	if !viper.IsSet(name) {
		return *new(T)
	}

	it, ok := viper.Get(name).(T)
	if !ok {
		logger.For(nil).Errorf("invalid env var: %s, expected type: %T", name, it)
		return *new(T)
	}

	return it
}

func GetString(name string) string {
	validate(name)
	return viper.GetString(name)
}

func GetInt(name string) int {
	validate(name)
	return viper.GetInt(name)
}

func GetInt64(name string) int64 {
	validate(name)
	return viper.GetInt64(name)
}

func GetBool(name string) bool {
	validate(name)
	return viper.GetBool(name)
}

func GetFloat64(name string) float64 {
	validate(name)
	return viper.GetFloat64(name)
}

func validate(name string) {
	validatorsMu.Lock()
	defer validatorsMu.Unlock()
	for _, tag := range validators[name] {
		err := v.Var(viper.GetString(name), tag)
		if err != nil {
			logger.For(nil).Errorf("invalid env var: %s, tag: %s, err: %s", name, tag, err.Error())
		}
	}
}

func dedupe(src []string) []string {
	result := src[:0]

	seen := make(map[string]bool)
	for _, x := range src {
		if !seen[x] {
			result = append(result, x)
			seen[x] = true
		}
	}
	return result
}

// VarNotSetTo panics if an env var is set to the given sentinel value, which
// guards against shipping placeholder credentials.
func VarNotSetTo(envVar, sentinel string) {
	if strings.EqualFold(viper.GetString(envVar), sentinel) {
		panic("env var " + envVar + " must not be " + sentinel)
	}
}
