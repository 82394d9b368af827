// Package config loads runtime configuration for the guestkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8787",
//	  "local_db_path": "guests.db",
//	  "export_dir": "exports",
//	  "default_title": "Isola 70",
//	  "log_level": "info",
//	  "request_timeout": "5s",
//	  "online_check_interval": "3s",
//	  "s3_bucket": "guest-exports",
//	  "s3_region": "us-east-1",
//	  "s3_endpoint": "http://127.0.0.1:9000",
//	  "s3_user": "minioadmin",
//	  "s3_password": "minioadmin"
//	}
//
// The CLI does not read environment variables; the server does.
package config
