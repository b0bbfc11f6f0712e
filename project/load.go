package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/Measter/simple-ident-res/common"
	"github.com/Measter/simple-ident-res/report"
)

// tomlProject represents a Foo project as it is encoded in TOML.
type tomlProject struct {
	Name       string `toml:"name"`
	Main       string `toml:"main"`
	FooVersion string `toml:"foo-version"`
}

// Project is a loaded and validated Foo project.
type Project struct {
	// AbsPath is the absolute path to the project directory.
	AbsPath string

	// Name is the project's declared name.
	Name string

	// MainPath is the absolute path to the project's entry source file.
	MainPath string
}

// Load loads and validates a project.  `abspath` is the absolute path to the
// project directory, which must contain a manifest file.
func Load(abspath string) (*Project, error) {
	buff, err := os.ReadFile(filepath.Join(abspath, common.FooModuleFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to read project file at `%s`: %s", abspath, err)
	}

	tomlProj := &tomlProject{}
	if err := toml.Unmarshal(buff, tomlProj); err != nil {
		return nil, fmt.Errorf("error parsing project file at `%s`: %s", abspath, err)
	}

	proj := &Project{AbsPath: abspath}
	if err := validateProject(proj, tomlProj); err != nil {
		return nil, err
	}

	return proj, nil
}

// validateProject checks that the manifest contents are valid and moves them
// over to the loaded project.
func validateProject(proj *Project, tomlProj *tomlProject) error {
	if tomlProj.Name == "" {
		return fmt.Errorf("project at `%s` is missing a name", proj.AbsPath)
	}

	if !IsValidName(tomlProj.Name) {
		return fmt.Errorf("project name `%s` must be a valid identifier", tomlProj.Name)
	}

	if tomlProj.Main == "" {
		return fmt.Errorf("project `%s` does not declare a main source file", tomlProj.Name)
	}

	if filepath.Ext(tomlProj.Main) != common.FooFileExt {
		return fmt.Errorf("main source file `%s` must have the `%s` extension", tomlProj.Main, common.FooFileExt)
	}

	if tomlProj.FooVersion != "" && tomlProj.FooVersion != common.FooVersion {
		report.ReportWarning(
			"project `%s` targets Foo v%s, current version is v%s",
			tomlProj.Name, tomlProj.FooVersion, common.FooVersion,
		)
	}

	proj.Name = tomlProj.Name
	proj.MainPath = filepath.Join(proj.AbsPath, tomlProj.Main)

	return nil
}

// IsValidName returns whether or not a given string would be a valid Foo
// identifier.  Foo identifiers start with a letter and are at least two
// characters long.
func IsValidName(name string) bool {
	if len(name) < 2 {
		return false
	}

	if !('a' <= name[0] && name[0] <= 'z' || 'A' <= name[0] && name[0] <= 'Z') {
		return false
	}

	for _, c := range name[1:] {
		if c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
			continue
		}

		return false
	}

	return true
}
