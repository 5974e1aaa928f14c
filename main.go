// Command seogen serves the browser-driven SEO article generation workflow.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dialagents/seogen/config"
	"github.com/dialagents/seogen/exporter"
	"github.com/dialagents/seogen/generator"
	"github.com/dialagents/seogen/server"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	addr    string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "seogen",
	Short: "SEO article generation service",
	Long: `seogen serves a browser-driven SEO article workflow: keyword research,
content brief, article draft, and refinement, each streamed live from an
OpenAI-compatible model, with finished articles exported to local files.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./seogen.yaml or ~/.config/seogen/seogen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
	serveCmd.Flags().StringVar(&addr, "addr", "", "http listen address (overrides server_addr)")
	rootCmd.AddCommand(serveCmd, versionCmd)
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	log := newLogger()

	llm, err := buildLLM(cfg)
	if err != nil {
		return err
	}
	exp := exporter.New(cfg.OutputDir, log)

	srv, err := server.New(llm, exp, cfg, log)
	if err != nil {
		return err
	}

	listen := cfg.ServerAddr
	if addr != "" {
		listen = addr
	}
	log.WithFields(logrus.Fields{
		"addr":     listen,
		"provider": cfg.LLM.Provider,
		"model":    cfg.LLM.Model,
	}).Info("starting web server")
	return http.ListenAndServe(listen, srv.Routes())
}

func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	switch cfg.LLM.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "deepseek":
		// DeepSeek 提供 OpenAI 兼容接口，需填写 base_url（例如官方/网关地址）。
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
