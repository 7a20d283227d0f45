package email

import (
	"fmt"
)

// AccountEmailData contains the data needed for staff account emails.
type AccountEmailData struct {
	Nombre       string
	Email        string
	TempPassword string
	RoleName     string
	AppName      string
	LoginURL     string
}

func appNameOrDefault(name string) string {
	if name == "" {
		return "Sistema de Fojas Quirúrgicas"
	}
	return name
}

// BuildTempPasswordEmail creates the email sent when an administrator
// provisions a new staff account. It carries the temporary password the
// account must replace at first login.
func BuildTempPasswordEmail(data AccountEmailData) Message {
	appName := appNameOrDefault(data.AppName)

	subject := fmt.Sprintf("Su cuenta en %s", appName)

	textBody := fmt.Sprintf(`Hola %s,

Se creó una cuenta para usted en %s con el rol de %s.

Sus credenciales de acceso:
  Email: %s
  Contraseña temporal: %s

Ingrese en %s y cambie la contraseña en el primer acceso.

Saludos,
Administración`,
		data.Nombre, appName, data.RoleName, data.Email, data.TempPassword, data.LoginURL)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hola %s,</h2>
    <p>Se creó una cuenta para usted en %s con el rol de <strong>%s</strong>.</p>
    <p>Sus credenciales de acceso:</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 16px;">
        Email: %s<br>
        Contraseña temporal: %s
    </p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Ingresar</a>
    </p>
    <p>Deberá cambiar la contraseña en el primer acceso.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Saludos,<br>Administración</p>
</body>
</html>`,
		data.Nombre, appName, data.RoleName, data.Email, data.TempPassword, data.LoginURL)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPasswordResetEmail creates the email sent when an administrator
// resets a staff account's password to a new temporary one.
func BuildPasswordResetEmail(data AccountEmailData) Message {
	appName := appNameOrDefault(data.AppName)

	subject := fmt.Sprintf("Restablecimiento de contraseña en %s", appName)

	textBody := fmt.Sprintf(`Hola %s,

Un administrador restableció la contraseña de su cuenta en %s.

Su nueva contraseña temporal: %s

Ingrese en %s y cambie la contraseña en el primer acceso.

Si no esperaba este cambio, comuníquese con administración.

Saludos,
Administración`,
		data.Nombre, appName, data.TempPassword, data.LoginURL)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hola %s,</h2>
    <p>Un administrador restableció la contraseña de su cuenta en %s.</p>
    <p>Su nueva contraseña temporal:</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 16px;">%s</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Ingresar</a>
    </p>
    <p>Deberá cambiar la contraseña en el primer acceso.</p>
    <p>Si no esperaba este cambio, comuníquese con administración.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Saludos,<br>Administración</p>
</body>
</html>`,
		data.Nombre, appName, data.TempPassword, data.LoginURL)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
