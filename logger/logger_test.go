package logger_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	"github.com/dentalanalytics/clinicas/config"
	"github.com/dentalanalytics/clinicas/logger"
)

var _ = Describe("NewProductionLogger", func() {
	It("uses the configured level", func() {
		log, err := logger.NewProductionLogger(&config.Config{LogLevel: "warn"})
		Expect(err).ToNot(HaveOccurred())
		Expect(log.Core().Enabled(zapcore.WarnLevel)).To(BeTrue())
		Expect(log.Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		Expect(logger.Suggar(log)).ToNot(BeNil())
	})

	It("rejects an unknown level", func() {
		_, err := logger.NewProductionLogger(&config.Config{LogLevel: "loud"})
		Expect(err).To(MatchError(ContainSubstring("loud")))
	})
})
