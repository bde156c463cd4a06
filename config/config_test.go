package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dentalanalytics/clinicas/config"
)

func unsetenv(keys ...string) {
	for _, key := range keys {
		GinkgoT().Setenv(key, "")
		Expect(os.Unsetenv(key)).To(Succeed())
	}
}

var _ = Describe("Config", func() {
	It("defaults to port 3001", func() {
		unsetenv("PORT", "CLINICAS_ALLOWED_ORIGIN", "LOG_LEVEL")

		cfg, err := config.NewConfig()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Port).To(Equal(uint16(3001)))
		Expect(cfg.AllowedOrigin).To(Equal("http://localhost:3000"))
		Expect(cfg.LogLevel).To(Equal("info"))
	})

	It("reads the port from the environment", func() {
		GinkgoT().Setenv("PORT", "8081")

		cfg, err := config.NewConfig()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Port).To(Equal(uint16(8081)))
	})

	It("rejects an invalid port", func() {
		GinkgoT().Setenv("PORT", "not-a-port")

		_, err := config.NewConfig()
		Expect(err).To(HaveOccurred())
	})

	Describe("LoadDotEnv", func() {
		It("ignores a missing file", func() {
			Expect(config.LoadDotEnv(filepath.Join(GinkgoT().TempDir(), ".env"))).To(Succeed())
		})

		It("does not override variables which are already set", func() {
			unsetenv("CLINICAS_ALLOWED_ORIGIN")
			GinkgoT().Setenv("PORT", "4000")

			file := filepath.Join(GinkgoT().TempDir(), ".env")
			Expect(os.WriteFile(file, []byte("PORT=5000\nCLINICAS_ALLOWED_ORIGIN=http://example.com\n"), 0600)).To(Succeed())
			Expect(config.LoadDotEnv(file)).To(Succeed())

			cfg, err := config.NewConfig()
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Port).To(Equal(uint16(4000)))
			Expect(cfg.AllowedOrigin).To(Equal("http://example.com"))
		})
	})
})
