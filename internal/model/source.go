// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines a funding source and its ordered, platform specific
// settings.
package model

import "fmt"

// Source is one configured funding platform.
type Source struct {
	Platform    Platform
	Username    string
	FundingType FundingType
	IsActive    bool
	// CustomURL is required when Platform is Custom.
	CustomURL string
	Config    PlatformConfig
}

// NewSource returns a source with the documented defaults applied.
func NewSource(platform Platform, username string) Source {
	return Source{
		Platform:    platform,
		Username:    username,
		FundingType: DefaultFundingType,
		IsActive:    true,
	}
}

func (s Source) String() string {
	return fmt.Sprintf("%s: %s", s.Platform, s.Username)
}

// Setting is a single key/value pair of a PlatformConfig.
type Setting struct {
	Key   string
	Value string
}

// PlatformConfig is an ordered string map with unique keys. The zero value is
// an empty, usable config.
type PlatformConfig []Setting

// Get returns the value stored under key.
func (c PlatformConfig) Get(key string) (string, bool) {
	for _, s := range c {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

// Set stores value under key. An existing key keeps its position.
func (c *PlatformConfig) Set(key, value string) {
	for i := range *c {
		if (*c)[i].Key == key {
			(*c)[i].Value = value
			return
		}
	}
	*c = append(*c, Setting{Key: key, Value: value})
}

// Keys returns the keys in insertion order.
func (c PlatformConfig) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, s := range c {
		keys = append(keys, s.Key)
	}
	return keys
}

// Len returns the number of settings.
func (c PlatformConfig) Len() int {
	return len(c)
}
