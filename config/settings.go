package config

import (
	"os"
	"strconv"
)

// S3Config holds the object storage credentials for post image uploads.
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Endpoint        string
	Region          string
}

func GetS3Config() *S3Config {
	return &S3Config{
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("S3_BUCKET_NAME"),
		PublicURL:       os.Getenv("S3_PUBLIC_URL"),
		Endpoint:        os.Getenv("S3_ENDPOINT"),
		Region:          getEnv("S3_REGION", "auto"),
	}
}

// AuthPolicyName selects how post mutation rights are decided:
// "single_admin" (legacy, one privileged account) or "owner".
func AuthPolicyName() string {
	return getEnv("AUTH_POLICY", "owner")
}

// RatingPolicyName selects what a second rating from the same user does:
// "reject" refuses it, "merge" increments the existing row's counter.
func RatingPolicyName() string {
	return getEnv("RATING_POLICY", "reject")
}

// AdminUserID is the privileged account consulted by both auth policies.
func AdminUserID() uint {
	if v := os.Getenv("ADMIN_USER_ID"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(id)
		}
	}
	return 1
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
