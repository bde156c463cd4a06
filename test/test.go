package test

import (
	"math/rand"
	"regexp"
	"runtime"
	"testing"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
	Faker  = faker.NewWithSeed(Source)
)

// Test runs the ginkgo specs of the calling package, named after it.
func Test(t *testing.T) {
	RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, suiteName())
}

var testFuncRegexp = regexp.MustCompile(`^(.+)_test\.[^/]+$`)

func suiteName() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "Suite"
	}
	if matches := testFuncRegexp.FindStringSubmatch(runtime.FuncForPC(pc).Name()); matches != nil {
		return matches[1]
	}
	return "Suite"
}
