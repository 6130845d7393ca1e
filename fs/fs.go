/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction used by both build pipelines.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is the subset of filesystem operations the pipelines need.
// Reading token sources, expanding globs and writing build artifacts all go
// through it so tests can run against an in-memory tree.
type FileSystem interface {
	WriteFile(name string, data []byte, perm fs.FileMode) error
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	Exists(path string) bool

	// Open makes a FileSystem usable with fs.WalkDir.
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem on top of the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the host filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (f *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (f *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists reports whether path can be stat'ed.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
