package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"reflect"

	"pushup.dev/pkg/pushup/internal/adapter"
	m "pushup.dev/pkg/pushup/internal/model"
)

const (
	keyTransportSecurity   = "NSAppTransportSecurity"
	keyExceptionDomains    = "NSExceptionDomains"
	keyAllowsInsecureHTTP  = "NSExceptionAllowsInsecureHTTPLoads"
	keyIncludesSubdomains  = "NSIncludesSubdomains"
	fallbackExceptionHost  = "localhost"
	exceptionDomainsPrefix = keyTransportSecurity + "." + keyExceptionDomains + "."
)

// ResourceConfigurator stores the host where the patched entry points read it
// at runtime: Info.plist on iOS, strings.xml on Android.
type ResourceConfigurator interface {
	Configure(ctx context.Context, platform m.Platform, path m.Path, host string, dryRun bool) ([]m.ResourceReport, error)
}

type resourceConfigurator struct {
	adapter.SourceFSAdapter
	adapter.PlistAdapter
	adapter.StringsXMLAdapter
}

// NewResourceConfigurator creates a ResourceConfigurator.
func NewResourceConfigurator(
	fsAdapter adapter.SourceFSAdapter,
	plistAdapter adapter.PlistAdapter,
	stringsAdapter adapter.StringsXMLAdapter,
) ResourceConfigurator {
	return &resourceConfigurator{
		SourceFSAdapter:   fsAdapter,
		PlistAdapter:      plistAdapter,
		StringsXMLAdapter: stringsAdapter,
	}
}

// Configure updates the resource file at path. Files that do not exist yet are
// created. Nothing is written when the file already holds the values.
func (c *resourceConfigurator) Configure(ctx context.Context, platform m.Platform, path m.Path, host string, dryRun bool) ([]m.ResourceReport, error) {
	switch platform {
	case m.PlatformIOS:
		return c.configureInfoPlist(ctx, path, host, dryRun)
	case m.PlatformAndroid:
		return c.configureStringsXML(ctx, path, host, dryRun)
	default:
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
}

func (c *resourceConfigurator) configureInfoPlist(ctx context.Context, path m.Path, host string, dryRun bool) ([]m.ResourceReport, error) {
	data, err := c.readOptional(ctx, path)
	if err != nil {
		return nil, err
	}

	dict, format, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	domain, exception := exceptionFor(host)

	domains := childDict(childDict(dict, keyTransportSecurity), keyExceptionDomains)

	reports := []m.ResourceReport{
		{Path: path, Key: m.HostResourceName, Value: host, Changed: setValue(dict, m.HostResourceName, host)},
		{Path: path, Key: exceptionDomainsPrefix + domain, Value: keyAllowsInsecureHTTP, Changed: setValue(domains, domain, exception)},
	}

	if !anyChanged(reports) || dryRun {
		return reports, nil
	}

	out, err := c.Encode(dict, format)
	if err != nil {
		return reports, fmt.Errorf("%s: %w", path, err)
	}

	if err := c.WriteFile(ctx, path, out); err != nil {
		return reports, fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}

	markWritten(reports)

	slog.Info("Info.plist updated", "path", path, "host", host, "exception_domain", domain)

	return reports, nil
}

func (c *resourceConfigurator) configureStringsXML(ctx context.Context, path m.Path, host string, dryRun bool) ([]m.ResourceReport, error) {
	data, err := c.readOptional(ctx, path)
	if err != nil {
		return nil, err
	}

	out, changed, err := c.SetString(data, m.StringResource{Name: m.HostResourceName, Value: host})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	reports := []m.ResourceReport{{Path: path, Key: m.HostResourceName, Value: host, Changed: changed}}

	if !changed || dryRun {
		return reports, nil
	}

	if err := c.WriteFile(ctx, path, out); err != nil {
		return reports, fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}

	markWritten(reports)

	slog.Info("strings.xml updated", "path", path, "host", host)

	return reports, nil
}

// readOptional reads path, treating a missing file as empty.
func (c *resourceConfigurator) readOptional(ctx context.Context, path m.Path) ([]byte, error) {
	data, err := c.ReadFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}

	return data, nil
}

// exceptionFor returns the ATS exception domain for host. A host without a
// hostname falls back to a localhost exception.
func exceptionFor(host string) (string, m.Dict) {
	u, err := url.Parse(host)
	if err == nil && u.Hostname() != "" {
		return u.Hostname(), m.Dict{keyAllowsInsecureHTTP: true, keyIncludesSubdomains: true}
	}

	slog.Warn("Host is not a valid URL, using localhost transport exception", "host", host)

	return fallbackExceptionHost, m.Dict{keyAllowsInsecureHTTP: true}
}

// childDict returns dict[key] as a dictionary, replacing any other value.
func childDict(dict m.Dict, key string) m.Dict {
	if child, ok := dict[key].(map[string]any); ok {
		return child
	}

	child := m.Dict{}
	dict[key] = child

	return child
}

func setValue(dict m.Dict, key string, value any) bool {
	if current, ok := dict[key]; ok && reflect.DeepEqual(current, value) {
		return false
	}

	dict[key] = value

	return true
}

func anyChanged(reports []m.ResourceReport) bool {
	for _, report := range reports {
		if report.Changed {
			return true
		}
	}

	return false
}

func markWritten(reports []m.ResourceReport) {
	for i := range reports {
		reports[i].Written = reports[i].Changed
	}
}
