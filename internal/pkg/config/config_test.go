package config_test

import (
	"io/ioutil"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/config"
)

var _ = Describe("Config", func() {
	var file *os.File

	BeforeEach(func() {
		var err error
		file, err = ioutil.TempFile("", "config")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.Remove(file.Name())
	})

	It("should return the zero config without a path", func() {
		c, err := config.Read("")
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(config.Config{}))
	})

	It("should read the file", func() {
		_, err := file.WriteString(`{"gitlab":{"token":"file-token"},"datadog":{"api_key":"k","app_key":"a","url":"https://api.datadoghq.eu"}}`)
		Expect(err).NotTo(HaveOccurred())
		file.Close()

		c, err := config.Read(file.Name())
		Expect(err).NotTo(HaveOccurred())
		Expect(c.GitLab.Token).To(Equal("file-token"))
		Expect(c.Datadog).To(Equal(config.DatadogConfig{APIKey: "k", AppKey: "a", URL: "https://api.datadoghq.eu"}))
	})

	It("should fail on a missing file", func() {
		_, err := config.Read(file.Name() + "-missing")
		Expect(err).To(MatchError(ContainSubstring("failed-to-read-config-file")))
	})

	It("should fail on invalid json", func() {
		_, err := file.WriteString(`{"gitlab":`)
		Expect(err).NotTo(HaveOccurred())
		file.Close()

		_, err = config.Read(file.Name())
		Expect(err).To(MatchError(ContainSubstring("failed-to-unmarshal-config")))
	})

	It("should let the environment win over the file", func() {
		env := map[string]string{"GITLAB_TOKEN": "env-token", "DATADOG_APP_KEY": ""}
		c := config.Config{
			GitLab:  config.GitLabConfig{Token: "file-token"},
			Datadog: config.DatadogConfig{AppKey: "file-app"},
		}.FromEnv(func(name string) string { return env[name] })

		Expect(c.GitLab.Token).To(Equal("env-token"))
		Expect(c.Datadog.AppKey).To(Equal("file-app"))
	})
})
