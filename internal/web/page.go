package web

// pageHTML is the single tracker page. The inline script drives the JSON API
// the same way a webview shell would: quick-add water buttons, motion-sample
// forwarding while tracking, and polling for a pending reminder prompt.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>stride</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; background: #0f172a; color: #e2e8f0; }
  .card { background: #1e293b; border-radius: 12px; padding: 1.25rem; margin-bottom: 1rem; }
  h1 { font-size: 1.4rem; } h2 { font-size: 1rem; color: #94a3b8; margin-top: 0; }
  .big { font-size: 2.2rem; font-weight: 700; }
  .bar { background: #334155; border-radius: 6px; height: 12px; overflow: hidden; }
  .bar > div { background: #38bdf8; height: 100%; width: {{.PercentOfGoal}}%; }
  button { background: #334155; color: #e2e8f0; border: 0; border-radius: 8px; padding: .5rem .9rem; margin-right: .5rem; cursor: pointer; }
  table { width: 100%; border-collapse: collapse; }
  td, th { text-align: left; padding: .3rem .2rem; border-bottom: 1px solid #334155; }
  .today { color: #38bdf8; font-weight: 600; }
  #modal { display: none; position: fixed; inset: 0; background: rgba(0,0,0,.6); }
  #modal .card { max-width: 320px; margin: 30vh auto; }
</style>
</head>
<body>
<h1>stride</h1>

<div class="card">
  <h2>Steps today</h2>
  <div class="big" id="steps">{{.StepsToday}}</div>
  <button id="trackBtn">Start tracking</button>
</div>

<div class="card">
  <h2>Water today</h2>
  <div class="big"><span id="water">{{.WaterToday}}</span> ml <small id="pct">({{.PercentOfGoal}}%)</small></div>
  <div class="bar"><div id="waterBar"></div></div>
  <p>
    <button data-water="150">+150 ml</button>
    <button data-water="250">+250 ml</button>
  </p>
  <p><label><input type="checkbox" id="reminders"> Remind me every 2 hours</label></p>
</div>

<div class="card">
  <h2>Last days</h2>
  <table>
    <tr><th>Date</th><th>Steps</th><th>Water (ml)</th></tr>
    {{range .History}}
    <tr{{if .IsToday}} class="today"{{end}}><td>{{.Date}}</td><td>{{.Steps}}</td><td>{{.Water}}</td></tr>
    {{end}}
  </table>
</div>

<div id="modal">
  <div class="card">
    <h2 id="modalTitle">Time to drink water</h2>
    <p id="modalBody"></p>
    <button id="logBtn">Log 150 ml</button>
    <button id="dismissBtn">Dismiss</button>
  </div>
</div>

<script>
const $ = (id) => document.getElementById(id);
let tracking = false;

function render(s) {
  $("steps").textContent = s.stepsToday;
  $("water").textContent = s.waterToday;
  $("pct").textContent = "(" + s.percentOfGoal + "%)";
  $("waterBar").style.width = s.percentOfGoal + "%";
}

async function post(url, body) {
  const res = await fetch(url, { method: "POST", headers: { "Content-Type": "application/json" }, body: JSON.stringify(body) });
  return res.json();
}

document.querySelectorAll("[data-water]").forEach((btn) => {
  btn.addEventListener("click", async () => {
    render(await post("/api/water", { amountMl: parseInt(btn.dataset.water, 10) }));
  });
});

$("trackBtn").addEventListener("click", async () => {
  tracking = !tracking;
  await post(tracking ? "/api/tracking/start" : "/api/tracking/stop", {});
  $("trackBtn").textContent = tracking ? "Stop tracking" : "Start tracking";
  if (tracking && "DeviceMotionEvent" in window) {
    window.addEventListener("devicemotion", onMotion);
  } else {
    window.removeEventListener("devicemotion", onMotion);
  }
});

let batch = [];
function onMotion(e) {
  const a = e.accelerationIncludingGravity;
  if (!a) return;
  batch.push({ ax: a.x || 0, ay: a.y || 0, az: a.z || 0, timestampMs: Date.now() });
  if (batch.length >= 30) {
    const samples = batch; batch = [];
    post("/api/steps", { samples }).then(render);
  }
}

$("reminders").addEventListener("change", async (e) => {
  await post("/api/reminders", { enabled: e.target.checked });
});

$("logBtn").addEventListener("click", async () => {
  render(await post("/api/reminders/ack", { logWater: true }));
  $("modal").style.display = "none";
});
$("dismissBtn").addEventListener("click", async () => {
  await post("/api/reminders/ack", { logWater: false });
  $("modal").style.display = "none";
});

setInterval(async () => {
  const res = await fetch("/api/reminders");
  const status = await res.json();
  $("reminders").checked = status.enabled;
  if (status.pending) {
    $("modalTitle").textContent = status.pending.title;
    $("modalBody").textContent = status.pending.body;
    $("modal").style.display = "block";
  }
}, 15000);
</script>
</body>
</html>
`
