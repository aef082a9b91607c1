// smoke 对运行中的服务走一遍 注册 -> 登录 -> 创建 todo -> 查询 todo
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:3000", "服务地址")
	email := flag.String("email", fmt.Sprintf("smoke-%d@example.com", time.Now().Unix()), "测试账号")
	password := flag.String("password", "smoke-password", "测试密码")
	flag.Parse()

	c := &client{base: *baseURL, http: &http.Client{Timeout: 10 * time.Second}}

	if err := run(c, *email, *password); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
	fmt.Println("✅ smoke test passed")
}

func run(c *client, email, password string) error {
	// 1. 注册 (账号已存在时 409，继续走登录)
	status, _, err := c.do(http.MethodPost, "/register", map[string]string{
		"email": email, "name": "Smoke", "firstname": "Test", "password": password,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusConflict {
		return fmt.Errorf("register: unexpected status %d", status)
	}

	// 2. 登录
	var login struct {
		Token string `json:"token"`
	}
	status, body, err := c.do(http.MethodPost, "/login", map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("login: status %d: %s", status, body)
	}
	if err := json.Unmarshal(body, &login); err != nil {
		return err
	}
	c.token = login.Token

	// 3. 创建 todo
	var created struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	status, body, err = c.do(http.MethodPost, "/todos", map[string]string{
		"title": "smoke", "description": "created by cmd/smoke", "due_time": "2030-01-01 10:00:00",
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("create todo: status %d: %s", status, body)
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return err
	}
	fmt.Printf("[create] %s\n", body)

	// 4. 回读
	status, body, err = c.do(http.MethodGet, fmt.Sprintf("/todos/%d", created.ID), nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("get todo: status %d: %s", status, body)
	}
	fmt.Printf("[get]    %s\n", body)

	// 5. 清理
	status, body, err = c.do(http.MethodDelete, fmt.Sprintf("/todos/%d", created.ID), nil)
	if err != nil {
		return err
	}
	fmt.Printf("[delete] %d %s\n", status, body)
	return nil
}

type client struct {
	base  string
	token string
	http  *http.Client
}

func (c *client) do(method, path string, payload any) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}
