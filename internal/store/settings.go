package store

import (
	"database/sql"
	"fmt"
	"strconv"
)

// 设置键
const (
	SettingHourlyRate       = "hourly_rate"
	SettingRoundingInterval = "rounding_interval"
)

// GetSetting 获取设置项
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("setting key not found: %s", key)
		}
		return "", err
	}
	return value, nil
}

// GetSettingInt 获取整数设置项
func (s *Store) GetSettingInt(key string) (int, error) {
	value, err := s.GetSetting(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

// GetSettingFloat 获取浮点数设置项
func (s *Store) GetSettingFloat(key string) (float64, error) {
	value, err := s.GetSetting(key)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(value, 64)
}

// SetSetting 设置设置项
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

// SetSettingInt 设置整数设置项
func (s *Store) SetSettingInt(key string, value int) error {
	return s.SetSetting(key, strconv.Itoa(value))
}

// SetSettingFloat 设置浮点数设置项
func (s *Store) SetSettingFloat(key string, value float64) error {
	return s.SetSetting(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// GetBillingSettings 获取当前时薪与取整粒度
func (s *Store) GetBillingSettings() (hourlyRate float64, roundingInterval int, err error) {
	hourlyRate, err = s.GetSettingFloat(SettingHourlyRate)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get hourly_rate: %w", err)
	}

	roundingInterval, err = s.GetSettingInt(SettingRoundingInterval)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get rounding_interval: %w", err)
	}

	return hourlyRate, roundingInterval, nil
}

// SetBillingSettings 保存时薪与取整粒度
func (s *Store) SetBillingSettings(hourlyRate float64, roundingInterval int) error {
	if err := s.SetSettingFloat(SettingHourlyRate, hourlyRate); err != nil {
		return err
	}
	return s.SetSettingInt(SettingRoundingInterval, roundingInterval)
}
