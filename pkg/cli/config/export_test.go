package config

var ConfigureLogger = (*Logger).configure
