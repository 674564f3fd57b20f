package toolchain

var ParseVersion = parseVersion
