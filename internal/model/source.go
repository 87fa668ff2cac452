// Package model defines the data structures shared by the patcher layers.
package model

import (
	"path/filepath"
	"strings"
)

// HostResourceName is the symbolic name under which the remote endpoint base
// is stored in platform resources and read back by the injected fragments.
const HostResourceName = "PushupHost"

// Path represents a file system path.
type Path string

// Dialect is the native source language of an entry-point file.
type Dialect string

const (
	// DialectKotlin is the Android MainApplication.kt dialect.
	DialectKotlin Dialect = "kotlin"
	// DialectJava is the legacy Android MainApplication.java dialect.
	DialectJava Dialect = "java"
	// DialectSwift is the iOS AppDelegate.swift dialect.
	DialectSwift Dialect = "swift"
	// DialectObjC is the Objective-C AppDelegate.m dialect.
	DialectObjC Dialect = "objc"
	// DialectObjCpp is the Objective-C++ AppDelegate.mm dialect.
	DialectObjCpp Dialect = "objcpp"
)

var dialectsByExt = map[string]Dialect{
	".kt":    DialectKotlin,
	".java":  DialectJava,
	".swift": DialectSwift,
	".m":     DialectObjC,
	".mm":    DialectObjCpp,
}

// DialectForPath derives the dialect from a file extension. It returns an
// empty dialect when the extension is unknown.
func DialectForPath(path Path) Dialect {
	return dialectsByExt[strings.ToLower(filepath.Ext(string(path)))]
}

// Platform is a native target of the application project.
type Platform string

const (
	// PlatformAndroid targets the android/ project directory.
	PlatformAndroid Platform = "android"
	// PlatformIOS targets the ios/ project directory.
	PlatformIOS Platform = "ios"
)

// Platforms returns every supported platform in a stable order.
func Platforms() []Platform {
	return []Platform{PlatformAndroid, PlatformIOS}
}

// Target is a native entry-point file queued for patching.
type Target struct {
	Platform Platform `yaml:"platform,omitempty"`
	Path     Path     `yaml:"path"`
	Dialect  Dialect  `yaml:"dialect"`
}
