package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	prxz "github.com/mizuki666/go-prxz"
)

func newValCmd(a *app) *cobra.Command {
	var (
		decimals string
		localize bool
	)

	cmd := &cobra.Command{
		Use:   "val <value>",
		Short: "Format a number or a list of numbers (fval)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("decimals") {
				decimals = a.env.Decimals
			}
			d, err := prxz.ParseDecimals(decimals)
			if err != nil {
				return err
			}
			value, err := a.decodeArg(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, a.formatter.Value(value, d, localize).String())
		},
	}

	cmd.Flags().StringVarP(&decimals, "decimals", "d", "2", `fraction digits or "auto"`)
	cmd.Flags().BoolVar(&localize, "localize", true, "use the locale separators")
	return cmd
}

func newPercCmd(a *app) *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "perc <value>",
		Short: "Format a percentage (fperc)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("decimals") {
				decimals = a.envDecimals()
			}
			value, err := a.decodeArg(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, a.formatter.Percent(value, decimals))
		},
	}

	cmd.Flags().IntVarP(&decimals, "decimals", "d", prxz.DefaultDecimals, "fraction digits")
	return cmd
}

func newMoneyCmd(a *app) *cobra.Command {
	var (
		decimals     int
		currencyCode string
	)

	cmd := &cobra.Command{
		Use:   "money <value>",
		Short: "Format an amount with a currency symbol (fmoney)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("decimals") {
				decimals = a.envDecimals()
			}
			if !cmd.Flags().Changed("currency") {
				currencyCode = a.env.Currency
			}
			value, err := a.decodeArg(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, a.formatter.Money(value, currencyCode, decimals))
		},
	}

	cmd.Flags().IntVarP(&decimals, "decimals", "d", prxz.DefaultDecimals, "fraction digits")
	cmd.Flags().StringVarP(&currencyCode, "currency", "c", prxz.DefaultCurrency, "ISO 4217 currency code")
	return cmd
}

func newShortCmd(a *app) *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "short <value>",
		Short: "Abbreviate a large number (fshortval)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("decimals") {
				decimals = a.envDecimals()
			}
			value, err := a.decodeArg(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, a.formatter.Short(value, decimals))
		},
	}

	cmd.Flags().IntVarP(&decimals, "decimals", "d", prxz.DefaultDecimals, "fraction digits")
	return cmd
}

func newDateCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "date <value>",
		Short: "Format a date in Moscow time (fdate)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.env.DateFormat
			}
			value, err := a.decodeArg(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, a.formatter.Date(value, format))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", prxz.DefaultDateFormat, "date template, e.g. dd.mm.yyyy HH:MM")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a text/template with the formatting helpers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read template: %w", err)
			}

			data, err := loadTemplateData(dataPath)
			if err != nil {
				return err
			}

			helpers := a.config.TemplateHelpers(prxz.HelperConfig{LocaleKey: "locale"})
			tmpl, err := template.New(filepath.Base(args[0])).
				Funcs(template.FuncMap(helpers)).
				Parse(string(source))
			if err != nil {
				return fmt.Errorf("parse template: %w", err)
			}

			a.logger.Debug("rendering template",
				zap.String("template", args[0]),
				zap.String("data", dataPath),
			)

			var out bytes.Buffer
			if err := tmpl.Execute(&out, data); err != nil {
				return fmt.Errorf("render template: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "JSON or YAML file with the template data")
	return cmd
}

// decodeArg passes the raw argument through unless --json is set.
func (a *app) decodeArg(raw string) (any, error) {
	if !a.jsonArgs {
		return raw, nil
	}

	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode argument %q: %w", raw, err)
	}
	return value, nil
}

func (a *app) envDecimals() int {
	d, err := prxz.ParseDecimals(a.env.Decimals)
	if err != nil || d.IsAuto() {
		a.logger.Debug("PRXZ_DECIMALS ignored", zap.String("value", a.env.Decimals))
		return prxz.DefaultDecimals
	}
	return d.Places()
}

func (a *app) print(cmd *cobra.Command, text string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func loadTemplateData(path string) (map[string]any, error) {
	data := map[string]any{}
	if path == "" {
		return data, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.UseNumber()
		err = decoder.Decode(&data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &data)
	default:
		return nil, fmt.Errorf("unsupported data format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode data %s: %w", path, err)
	}
	return data, nil
}
