package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// servePage delivers the shell page. The page is a passive mirror: it
// forwards clicks and form input to /ui/* and applies the JSON events
// arriving on /ws to the regions named by the controller.
func servePage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Triage Board</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
<style>
body { font-family: sans-serif; margin: 0; }
nav a { margin-right: 1em; cursor: pointer; }
.section { display: none; padding: 1em; }
.section.active { display: block; }
#notifications { position: fixed; top: 20px; right: 20px; z-index: 9999; }
.alert { padding: .5em 1em; margin-bottom: .5em; border: 1px solid #ccc; background: #fff; }
.alert.error { border-color: #dc3545; }
.alert.success { border-color: #198754; }
.patient-card { border: 1px solid #ddd; margin: .5em 0; padding: .5em; }
</style>
</head>
<body>
<nav>
  <a class="nav-link" data-section="dashboard">Dashboard</a>
  <a class="nav-link" data-section="patients">Add Patient</a>
  <a class="nav-link" data-section="queue">Queue</a>
  <a class="nav-link" data-section="simulation">Simulation</a>
</nav>
<div id="notifications"></div>

<div id="dashboard" class="section active">
  <h2>Dashboard</h2>
  <div>Total: <span id="total-patients">0</span></div>
  <div>Critical: <span id="critical-patients">0</span></div>
  <div>Average age: <span id="average-age">0</span></div>
  <canvas id="priorityChart" width="320" height="240"></canvas>
  <div id="recent-activity"></div>
  <div id="station-health"></div>
</div>

<div id="patients" class="section">
  <h2>Add Patient</h2>
  <form id="patient-form"></form>
  <div>Pain: <span id="pain-value">1</span></div>
  <div id="prediction-result"></div>
</div>

<div id="queue" class="section">
  <h2>Patient Queue</h2>
  <div id="patient-queue"></div>
</div>

<div id="simulation" class="section">
  <h2>Simulation</h2>
  <select id="algorithm-select">
    <option value="fcfs">FCFS</option>
    <option value="priority">Priority</option>
    <option value="round_robin">Round Robin</option>
    <option value="mlfq">MLFQ</option>
  </select>
  <div id="simulation-results"></div>
  <canvas id="comparisonChart" width="480" height="240"></canvas>
</div>

<script>
const chartInstances = {};
function ensureChart(id, labels, seriesCount) {
  const el = document.getElementById(id);
  if (!el) return null;
  if (!chartInstances[id]) {
    const datasets = [];
    for (let i = 0; i < seriesCount; i++) datasets.push({ data: [], label: '' });
    chartInstances[id] = new Chart(el, {
      type: id === 'priorityChart' ? 'doughnut' : 'bar',
      data: { labels: labels, datasets: datasets },
    });
  }
  return chartInstances[id];
}

function apply(ev) {
  if (ev.kind === 'surface') {
    const el = document.getElementById(ev.id);
    if (el) el.innerHTML = ev.html;
  } else if (ev.kind === 'section') {
    document.querySelectorAll('.section').forEach(s => s.classList.remove('active'));
    const target = document.getElementById(ev.id);
    if (target) target.classList.add('active');
  } else if (ev.kind === 'notification') {
    const box = document.getElementById('notifications');
    if (ev.action === 'show') {
      const div = document.createElement('div');
      div.className = 'alert ' + ev.notification.severity;
      div.id = 'notification-' + ev.notification.id;
      div.textContent = ev.notification.message;
      box.appendChild(div);
    } else {
      const div = document.getElementById('notification-' + ev.id);
      if (div) div.remove();
    }
  } else if (ev.kind === 'chart') {
    const chart = ensureChart(ev.id, ev.labels, ev.series.length);
    if (!chart) return;
    ev.series.forEach((s, i) => { chart.data.datasets[i].data = s; });
    chart.update();
  } else if (ev.kind === 'form') {
    const form = document.getElementById('patient-form');
    if (!form) return;
    if (ev.action === 'reset') form.reset();
    else if (ev.action === 'fill') {
      Object.entries(ev.values).forEach(([key, value]) => {
        const field = form.elements[key];
        if (field) field.value = value;
      });
    }
  }
}

const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
ws.onmessage = (msg) => apply(JSON.parse(msg.data));

function post(path, body) {
  fetch('/ui/' + path, {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify(body || {}),
  });
}

document.querySelectorAll('.nav-link').forEach(link => {
  link.addEventListener('click', () => post('navigate', { section: link.dataset.section }));
});
</script>
</body>
</html>
`
