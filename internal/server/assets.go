package server

// indexHTML is the built-in landing page; it is minified at startup.
var indexHTML = []byte(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>geomag API</title>
    <style>
        body { font-family: monospace; margin: 2em auto; max-width: 46em; }
        code { background: #eee; padding: 0 0.3em; }
        td { padding: 0.2em 0.8em 0.2em 0; }
    </style>
</head>
<body>
    <h1>geomag API</h1>
    <p>Magnetic field line topology and time conversion service.</p>
    <table>
        <tr>
            <td><code>GET /api/classify</code></td>
            <td>x, y, z, date (YYYYMMDD), ut, sys, model, extended</td>
        </tr>
        <tr>
            <td><code>GET /api/convert</code></td>
            <td>x, y, z, date, ut, from, to</td>
        </tr>
        <tr>
            <td><code>GET /api/leapseconds</code></td>
            <td>jd or date (YYYYMMDD)</td>
        </tr>
        <tr>
            <td><code>GET /api/dateconv</code></td>
            <td>t (RFC3339, repeatable)</td>
        </tr>
        <tr>
            <td><code>GET /metrics</code></td>
            <td>prometheus metrics</td>
        </tr>
    </table>
</body>
</html>
`)
