/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dependency

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/mitchellh/mapstructure"
	"github.com/phayes/freeport"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	logger "d7y.io/fraudtrainer/internal/dflog"
)

// InitCommandAndConfig initializes flags binding and common sub cmds.
// config is a pointer to configuration struct.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any) {
	rootName := cmd.Root().Name()
	cobra.OnInitialize(func() { initConfig(useConfigFile, rootName, config) })

	if !cmd.HasParent() {
		// Add common flags
		flags := cmd.PersistentFlags()
		flags.Bool("console", false, "whether logger output records to the stdout")
		flags.Bool("verbose", false, "whether logger use debug level")
		flags.Int("pprof-port", 0, "listen port for pprof and statsview, 0 represents random port")
		flags.String("config", "", fmt.Sprintf("the path of configuration file with yaml extension name, default is ./%s.yaml", rootName))

		// Bind common flags
		if err := viper.BindPFlags(flags); err != nil {
			panic(fmt.Errorf("bind common flags to viper: %w", err))
		}

		// Config for binding env
		viper.SetEnvPrefix(rootName)
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		viper.AutomaticEnv()

		// Add common cmds only on root cmd
		cmd.AddCommand(VersionCmd)
		cmd.AddCommand(newConfigCmd(config))
	}
}

// InitMonitor serves pprof and statsview in verbose mode, the returned
// function stops them.
func InitMonitor(verbose bool, pprofPort int) func() {
	if !verbose {
		return func() {}
	}

	if pprofPort == 0 {
		pprofPort, _ = freeport.GetFreePort()
	}

	debugAddr := fmt.Sprintf("localhost:%d", pprofPort)
	viewer.SetConfiguration(viewer.WithAddr(debugAddr))
	vm := statsview.New()

	logger.With("pprof", fmt.Sprintf("http://%s/debug/pprof", debugAddr),
		"statsview", fmt.Sprintf("http://%s/debug/statsview", debugAddr)).
		Infof("enable pprof at %s", debugAddr)

	go func() {
		if err := vm.Start(); err != nil {
			logger.Warnf("serve pprof error: %v", err)
		}
	}()

	return func() {
		vm.Stop()
	}
}

// SetupQuitSignalHandler returns a context canceled on SIGINT or SIGTERM,
// handler is called once before cancellation.
func SetupQuitSignalHandler(ctx context.Context, handler func()) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-signals:
			logger.Warnf("receive %s signal", sig)
			handler()
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(signals)
	}()

	return ctx, cancel
}

func initConfig(useConfigFile bool, name string, config any) {
	// Use config file and read once.
	if useConfigFile {
		cfgFile := viper.GetString("config")
		if cfgFile != "" {
			// Use config file from the flag.
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(".")
			viper.SetConfigName(name)
		}
		viper.SetConfigType("yaml")

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if cfgFile != "" || !errors.As(err, &notFound) {
				panic(fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err))
			}
		}
	}

	if err := viper.Unmarshal(config, initDecoderConfig); err != nil {
		panic(fmt.Errorf("unmarshal config to struct: %w", err))
	}
}

func initDecoderConfig(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func newConfigCmd(config any) *cobra.Command {
	return &cobra.Command{
		Use:               "config",
		Short:             "show the effective configuration",
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(config)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
