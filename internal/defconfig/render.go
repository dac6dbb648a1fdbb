package defconfig

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"mvconfig-generator/internal/encode"
	"mvconfig-generator/internal/output"
)

// Output file names.
const (
	AutoConfName = "auto.conf"
	HeaderName   = "config.h"
)

var headerTemplate = template.Must(template.New("config.h").Parse(
	"#ifndef __MINOS_CONFIG_H__\r\n" +
		"#define __MINOS_CONFIG_H__\r\n\r\n" +
		"{{range .}}#define {{.Key}} {{.Value}}\r\n{{end}}" +
		"\r\n#endif",
))

// RenderAutoConf renders the make-includable KEY=value listing.
func RenderAutoConf(c *Config) []byte {
	var b strings.Builder

	for _, e := range c.entries {
		b.WriteString(e.Key)
		b.WriteString("=")
		b.WriteString(sizeToHex(e.Value))
		b.WriteString("\r\n")
	}

	return []byte(b.String())
}

// RenderHeader renders config.h with one #define per entry. Boolean "y"
// options become 1.
func RenderHeader(c *Config) ([]byte, error) {
	defines := make([]Entry, 0, len(c.entries))

	for _, e := range c.entries {
		value := e.Value
		if value == "y" {
			value = "1"
		} else {
			value = sizeToHex(value)
		}

		defines = append(defines, Entry{Key: e.Key, Value: value})
	}

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, defines); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// Files renders both outputs.
func Files(c *Config) ([]output.File, error) {
	header, err := RenderHeader(c)
	if err != nil {
		return nil, err
	}

	return []output.File{
		{Name: AutoConfName, Content: RenderAutoConf(c)},
		{Name: HeaderName, Content: header},
	}, nil
}

// sizeToHex turns sizes such as "64K" into hex byte counts ("0x10000").
// Values that are not sizes pass through unchanged.
func sizeToHex(value string) string {
	n, ok := encode.ParseSize(value)
	if !ok {
		return value
	}

	return "0x" + strconv.FormatInt(n, 16)
}
