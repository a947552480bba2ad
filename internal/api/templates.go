package api

import "html/template"

// 页面模板直接内嵌，这个系统的网页侧只有登录和注册两张表单，
// 不值得引入独立的模板目录和静态资源管线
const loginHTML = `{{define "login.html"}}<!DOCTYPE html>
<html>
<head><title>Sign in</title></head>
<body>
<h1>Sign in</h1>
{{if .msg}}<p class="msg">{{.msg}}</p>{{end}}
<form method="post" action="/login">
  <input name="username" placeholder="Username" autofocus>
  <input name="password" type="password" placeholder="Password">
  <button type="submit" name="login" value="1">Sign in</button>
</form>
<p><a href="/register">Create an account</a></p>
</body>
</html>{{end}}`

const registerHTML = `{{define "register.html"}}<!DOCTYPE html>
<html>
<head><title>Register</title></head>
<body>
<h1>Register</h1>
{{if .msg}}<p class="msg {{if .success}}ok{{else}}err{{end}}">{{.msg}}</p>{{end}}
<form method="post" action="/register">
  <input name="username" placeholder="Username">
  <input name="email" type="email" placeholder="Email">
  <input name="password" type="password" placeholder="Password">
  <select name="company">
    <option value="">Select a company...</option>
    {{range .companies}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
  </select>
  <button type="submit" name="register" value="1">Register</button>
</form>
<p><a href="/login">Back to login</a></p>
</body>
</html>{{end}}`

const homeHTML = `{{define "home.html"}}<!DOCTYPE html>
<html>
<head><title>StockRoom</title></head>
<body>
<h1>Welcome, {{.username}}</h1>
<p><a href="/logout">Sign out</a></p>
</body>
</html>{{end}}`

// Templates 返回网页侧用到的全部模板
func Templates() *template.Template {
	t := template.New("web")
	template.Must(t.Parse(loginHTML))
	template.Must(t.Parse(registerHTML))
	template.Must(t.Parse(homeHTML))
	return t
}
