package common

// FooVersion is the current Foo toolchain version as a string.
const FooVersion string = "0.1.0"

// FooModuleFileName is the name for Foo module manifest files.
const FooModuleFileName string = "foo-mod.toml"

// FooFileExt is the file extension for a Foo source file.
const FooFileExt string = ".foo"
